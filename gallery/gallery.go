package gallery

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"gedo/db"
	"gedo/medianorm"
	"gedo/models"
	"gedo/mq"
	"gedo/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GET /api/gallery — public, newest first. Store failures degrade to an
// empty list.
func GetGallery(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	items, err := utils.FindAndDecode[models.GalleryItem](ctx, db.GalleryCollection, bson.M{}, opts)
	if err != nil || items == nil {
		items = []models.GalleryItem{}
	}
	for i := range items {
		items[i].URL = medianorm.Normalize(items[i].URL)
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

// POST /api/gallery — authenticated.
func CreateGalleryItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var body struct {
		URL     string `json:"url"`
		Caption string `json:"caption"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.URL == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing url")
		return
	}

	item := models.GalleryItem{
		ID:        utils.GenerateRandomString(14),
		URL:       body.URL,
		Caption:   body.Caption,
		CreatedAt: models.Now(),
	}

	if _, err := db.GalleryCollection.InsertOne(ctx, item); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	go mq.Emit(ctx, "gallery-created", models.Index{EntityType: "gallery", EntityId: item.ID, Method: "POST"})
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"id": item.ID})
}

// DELETE /api/gallery/:id — authenticated.
func DeleteGalleryItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	id := ps.ByName("id")

	if _, err := db.GalleryCollection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	go mq.Emit(ctx, "gallery-deleted", models.Index{EntityType: "gallery", EntityId: id, Method: "DELETE"})
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"success": true})
}

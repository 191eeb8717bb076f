package categories

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"gedo/db"
	"gedo/dishes"
	"gedo/models"
	"gedo/mq"
	"gedo/rdx"
	"gedo/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const listCacheKey = "categories:all"

// GET /api/categories — public, ordered by sort field. An ordered query
// failure (e.g. missing index) falls back to an unordered read; a full
// failure degrades to an empty list.
func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, err := rdx.RdxGet(listCacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cats, err := utils.FindAndDecode[models.Category](ctx, db.CategoriesCollection, bson.M{}, opts)
	if err != nil {
		cats, err = utils.FindAndDecode[models.Category](ctx, db.CategoriesCollection, bson.M{})
	}
	if err != nil {
		utils.RespondWithJSON(w, http.StatusOK, []models.Category{})
		return
	}
	if cats == nil {
		cats = []models.Category{}
	}

	if buf, err := json.Marshal(cats); err == nil {
		rdx.RdxSet(listCacheKey, string(buf))
	}
	utils.RespondWithJSON(w, http.StatusOK, cats)
}

// POST /api/categories — authenticated.
func CreateCategory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var body struct {
		Name  string      `json:"name"`
		Order json.Number `json:"order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing name")
		return
	}

	order, _ := body.Order.Int64()
	cat := models.Category{
		ID:        utils.GenerateRandomString(14),
		Name:      body.Name,
		Order:     int(order),
		CreatedAt: models.Now(),
	}

	if _, err := db.CategoriesCollection.InsertOne(ctx, cat); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	rdx.RdxDel(listCacheKey)
	go mq.Emit(ctx, "category-created", models.Index{EntityType: "category", EntityId: cat.ID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"id": cat.ID})
}

// PUT /api/categories/:id — authenticated partial update.
func EditCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	catID := ps.ByName("id")

	var body struct {
		Name  *string      `json:"name"`
		Order *json.Number `json:"order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	fields := bson.M{}
	if body.Name != nil {
		fields["name"] = *body.Name
	}
	if body.Order != nil {
		order, _ := body.Order.Int64()
		fields["order"] = int(order)
	}
	if len(fields) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	_, err := db.CategoriesCollection.UpdateOne(ctx,
		bson.M{"_id": catID},
		bson.M{"$set": fields},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	rdx.RdxDel(listCacheKey)
	go mq.Emit(ctx, "category-edited", models.Index{EntityType: "category", EntityId: catID, Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"success": true})
}

// DELETE /api/categories/:id — authenticated. Cascades: dishes referencing
// the category get their reference cleared, never deleted.
func DeleteCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	catID := ps.ByName("id")

	if _, err := db.CategoriesCollection.DeleteOne(ctx, bson.M{"_id": catID}); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := dishes.ClearCategory(ctx, catID); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	rdx.RdxDel(listCacheKey)
	go mq.Emit(ctx, "category-deleted", models.Index{EntityType: "category", EntityId: catID, Method: "DELETE"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"success": true})
}

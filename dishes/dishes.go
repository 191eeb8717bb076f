package dishes

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"gedo/db"
	"gedo/medianorm"
	"gedo/models"
	"gedo/mq"
	"gedo/rdx"
	"gedo/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const listCacheKey = "dishes:all"

// dishPayload tolerates string or numeric prices from the admin form.
type dishPayload struct {
	Name        string        `json:"name"`
	Price       json.Number   `json:"price"`
	Description string        `json:"description"`
	Image       string        `json:"image"`
	CategoryID  *string       `json:"categoryId"`
	Badge       *models.Badge `json:"badge"`
}

func (p *dishPayload) toUpdate() bson.M {
	fields := bson.M{}
	if p.Name != "" {
		fields["name"] = p.Name
	}
	if p.Price != "" {
		price, _ := p.Price.Float64()
		fields["price"] = price
	}
	if p.Description != "" {
		fields["description"] = p.Description
	}
	if p.Image != "" {
		fields["image"] = p.Image
	}
	if p.CategoryID != nil {
		fields["categoryId"] = *p.CategoryID
	}
	if p.Badge != nil {
		fields["badge"] = p.Badge
	}
	return fields
}

// GET /api/dishes — public. Store failures degrade to an empty list so the
// menu page keeps rendering.
func GetDishes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, err := rdx.RdxGet(listCacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	dishes, err := utils.FindAndDecode[models.Dish](ctx, db.DishesCollection, bson.M{})
	if err != nil {
		utils.RespondWithJSON(w, http.StatusOK, []models.Dish{})
		return
	}
	for i := range dishes {
		dishes[i].Image = medianorm.Normalize(dishes[i].Image)
	}
	if dishes == nil {
		dishes = []models.Dish{}
	}

	if buf, err := json.Marshal(dishes); err == nil {
		rdx.RdxSet(listCacheKey, string(buf))
	}
	utils.RespondWithJSON(w, http.StatusOK, dishes)
}

// GET /api/dishes/:id
func GetDish(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var dish models.Dish
	err := db.DishesCollection.FindOne(r.Context(), bson.M{"_id": ps.ByName("id")}).Decode(&dish)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Not found")
		return
	}
	dish.Image = medianorm.Normalize(dish.Image)
	utils.RespondWithJSON(w, http.StatusOK, dish)
}

// POST /api/dishes — authenticated.
func CreateDish(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var payload dishPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	price, _ := payload.Price.Float64()
	dish := models.Dish{
		ID:          utils.GenerateRandomString(14),
		Name:        payload.Name,
		Price:       price,
		Description: payload.Description,
		Image:       payload.Image,
		CategoryID:  payload.CategoryID,
		Badge:       payload.Badge,
	}

	if _, err := db.DishesCollection.InsertOne(ctx, dish); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	rdx.RdxDel(listCacheKey)
	go mq.Emit(ctx, "dish-created", models.Index{EntityType: "dish", EntityId: dish.ID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"id": dish.ID})
}

// PUT /api/dishes/:id — authenticated partial update.
func EditDish(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	dishID := ps.ByName("id")

	var payload dishPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	fields := payload.toUpdate()
	if len(fields) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	_, err := db.DishesCollection.UpdateOne(ctx,
		bson.M{"_id": dishID},
		bson.M{"$set": fields},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	rdx.RdxDel(listCacheKey)
	go mq.Emit(ctx, "dish-edited", models.Index{EntityType: "dish", EntityId: dishID, Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"success": true})
}

// DELETE /api/dishes/:id — authenticated.
func DeleteDish(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	dishID := ps.ByName("id")

	if _, err := db.DishesCollection.DeleteOne(ctx, bson.M{"_id": dishID}); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	rdx.RdxDel(listCacheKey)
	go mq.Emit(ctx, "dish-deleted", models.Index{EntityType: "dish", EntityId: dishID, Method: "DELETE"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"success": true})
}

// ClearCategory clears the category reference on every dish pointing at the
// deleted category. Read-then-write, not atomic with the category delete; a
// dish created mid-cascade may briefly dangle.
func ClearCategory(ctx context.Context, categoryID string) error {
	_, err := db.DishesCollection.UpdateMany(ctx,
		bson.M{"categoryId": categoryID},
		bson.M{"$set": bson.M{"categoryId": primitive.Null{}}},
	)
	if err == nil {
		rdx.RdxDel(listCacheKey)
	}
	return err
}

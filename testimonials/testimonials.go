package testimonials

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"gedo/db"
	"gedo/models"
	"gedo/mq"
	"gedo/ratelim"
	"gedo/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// GET /api/testimonials — public, approved entries only. Store failures
// degrade to an empty list.
func GetTestimonials(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := utils.FindAndDecode[models.Testimonial](ctx, db.TestimonialsCollection, bson.M{"approved": true})
	if err != nil || items == nil {
		items = []models.Testimonial{}
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

// GET /api/admin/testimonials — authenticated, all entries including
// unapproved ones.
func GetAllTestimonials(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := utils.FindAndDecode[models.Testimonial](ctx, db.TestimonialsCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if items == nil {
		items = []models.Testimonial{}
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

// POST /api/testimonials — authenticated; defaults to approved.
func CreateTestimonial(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var body struct {
		Name     string   `json:"name"`
		Email    string   `json:"email"`
		Quote    string   `json:"quote"`
		Stars    *float64 `json:"stars"`
		Approved *bool    `json:"approved"`
		Avatar   string   `json:"avatar"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	item := models.Testimonial{
		ID:        utils.NewUUID(),
		Name:      body.Name,
		Email:     body.Email,
		Quote:     body.Quote,
		Stars:     5,
		Approved:  true,
		CreatedAt: models.Now(),
		Avatar:    body.Avatar,
	}
	if body.Stars != nil {
		item.Stars = ClampStars(*body.Stars)
	}
	if body.Approved != nil {
		item.Approved = *body.Approved
	}

	if _, err := db.TestimonialsCollection.InsertOne(ctx, item); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	go mq.Emit(ctx, "testimonial-created", models.Index{EntityType: "testimonial", EntityId: item.ID, Method: "POST"})
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"id": item.ID})
}

// PUT /api/testimonials/:id — authenticated partial update (approval flips
// arrive here).
func EditTestimonial(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	id := ps.ByName("id")

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil || len(fields) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid update data")
		return
	}
	delete(fields, "id")
	delete(fields, "_id")

	_, err := db.TestimonialsCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	go mq.Emit(ctx, "testimonial-edited", models.Index{EntityType: "testimonial", EntityId: id, Method: "PUT"})
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"success": true})
}

// DELETE /api/testimonials/:id — authenticated.
func DeleteTestimonial(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	id := ps.ByName("id")

	if _, err := db.TestimonialsCollection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	go mq.Emit(ctx, "testimonial-deleted", models.Index{EntityType: "testimonial", EntityId: id, Method: "DELETE"})
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"success": true})
}

// PublicCreate returns the unauthenticated submission handler. Validation
// runs before the cooldown is consulted; a rejected request never touches
// the ledger. Submissions land unapproved.
func PublicCreate(cooldown *ratelim.Cooldown) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		ctx := r.Context()
		ip := utils.ClientIP(r)

		var body struct {
			Name  string   `json:"name"`
			Email string   `json:"email"`
			Quote string   `json:"quote"`
			Stars *float64 `json:"stars"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
			return
		}

		if body.Name == "" || body.Email == "" || body.Quote == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "Missing fields")
			return
		}
		if !ValidEmail(body.Email) {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid email")
			return
		}
		if ContainsProfanity(body.Quote) || ContainsProfanity(body.Name) {
			utils.RespondWithError(w, http.StatusBadRequest, "Inappropriate language detected")
			return
		}

		if wait := cooldown.Remaining(ip); wait > 0 {
			utils.RespondWithError(w, http.StatusTooManyRequests, "Please wait before submitting another review.")
			return
		}

		stars := 5.0
		if body.Stars != nil {
			stars = *body.Stars
		}

		item := models.Testimonial{
			ID:        utils.NewUUID(),
			Name:      body.Name,
			Email:     body.Email,
			Quote:     body.Quote,
			Stars:     ClampStars(stars),
			Approved:  false,
			CreatedAt: models.Now(),
			Avatar:    fmt.Sprintf("https://api.dicebear.com/7.x/initials/svg?seed=%s", url.QueryEscape(body.Name)),
		}

		if _, err := db.TestimonialsCollection.InsertOne(ctx, item); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		cooldown.Record(ip)
		go mq.Emit(ctx, "testimonial-submitted", models.Index{EntityType: "testimonial", EntityId: item.ID, Method: "POST"})

		utils.RespondWithJSON(w, http.StatusOK, map[string]any{"id": item.ID, "success": true})
	}
}

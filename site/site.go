package site

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"gedo/db"
	"gedo/models"
	"gedo/mq"
	"gedo/rdx"
	"gedo/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const settingsCacheKey = "site:settings"

// GetSettings returns the effective settings: defaults overlaid with the
// stored partial document. Store failures degrade to pure defaults so the
// site keeps rendering.
func GetSettings(ctx context.Context) models.SiteSettings {
	defaults := Defaults()

	var patch models.SitePatch
	err := db.SiteCollection.FindOne(ctx, bson.M{"_id": db.SettingsDocID}).Decode(&patch)
	if err != nil {
		return defaults
	}
	return Merge(defaults, patch)
}

// StoredAdminAuth is the credential source injected into the auth
// middleware. A missing settings document falls back to the seed credential,
// matching the merged-read invariant.
func StoredAdminAuth(ctx context.Context) (*models.AdminAuth, error) {
	var doc struct {
		AdminAuth *models.AdminAuth `bson:"adminAuth"`
	}
	err := db.SiteCollection.FindOne(ctx, bson.M{"_id": db.SettingsDocID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return Defaults().AdminAuth, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.AdminAuth, nil
}

// GET /api/site — public, credential pair stripped.
func GetSiteSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, err := rdx.RdxGet(settingsCacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	settings := GetSettings(ctx)
	settings.AdminAuth = nil

	if buf, err := json.Marshal(settings); err == nil {
		rdx.RdxSet(settingsCacheKey, string(buf))
	}
	utils.RespondWithJSON(w, http.StatusOK, settings)
}

// PUT /api/site — authenticated partial merge; untouched fields stay as
// stored, never replaced wholesale.
func UpdateSiteSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var patch models.SitePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	fields, err := PatchFields(patch)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	// An empty body is a no-op, not an error; mongo rejects an empty $set.
	if len(fields) == 0 {
		utils.RespondWithJSON(w, http.StatusOK, map[string]any{"success": true})
		return
	}

	opts := options.Update().SetUpsert(true)
	_, err = db.SiteCollection.UpdateOne(ctx,
		bson.M{"_id": db.SettingsDocID},
		bson.M{"$set": fields},
		opts,
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	rdx.RdxDel(settingsCacheKey)
	go mq.Emit(ctx, "site-updated", models.Index{EntityType: "site", EntityId: db.SettingsDocID, Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"success": true})
}

// PUT /api/admin/credentials — authenticated, replaces the stored pair.
func UpdateAdminCredentials(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Username == "" || body.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Username and password required")
		return
	}

	auth := models.AdminAuth{
		Username:     body.Username,
		PasswordHash: utils.HashPassword(body.Password),
	}

	opts := options.Update().SetUpsert(true)
	_, err := db.SiteCollection.UpdateOne(ctx,
		bson.M{"_id": db.SettingsDocID},
		bson.M{"$set": bson.M{"adminAuth": auth}},
		opts,
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	rdx.RdxDel(settingsCacheKey)
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"success": true})
}

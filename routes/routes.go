package routes

import (
	"net/http"

	"gedo/categories"
	"gedo/dishes"
	"gedo/filedrop"
	"gedo/filemgr"
	"gedo/gallery"
	"gedo/middleware"
	"gedo/ratelim"
	"gedo/site"
	"gedo/testimonials"

	"github.com/julienschmidt/httprouter"
)

func AddDishRoutes(router *httprouter.Router, auth *middleware.Authenticator, rl *ratelim.RateLimiter) {
	router.GET("/api/dishes", rl.Limit(dishes.GetDishes))
	router.GET("/api/dishes/:id", rl.Limit(dishes.GetDish))
	router.POST("/api/dishes", auth.Require(dishes.CreateDish))
	router.PUT("/api/dishes/:id", auth.Require(dishes.EditDish))
	router.DELETE("/api/dishes/:id", auth.Require(dishes.DeleteDish))
}

func AddCategoryRoutes(router *httprouter.Router, auth *middleware.Authenticator, rl *ratelim.RateLimiter) {
	router.GET("/api/categories", rl.Limit(categories.GetCategories))
	router.POST("/api/categories", auth.Require(categories.CreateCategory))
	router.PUT("/api/categories/:id", auth.Require(categories.EditCategory))
	router.DELETE("/api/categories/:id", auth.Require(categories.DeleteCategory))
}

func AddTestimonialRoutes(router *httprouter.Router, auth *middleware.Authenticator, rl *ratelim.RateLimiter, cooldown *ratelim.Cooldown) {
	router.GET("/api/testimonials", rl.Limit(testimonials.GetTestimonials))
	router.GET("/api/admin/testimonials", auth.Require(testimonials.GetAllTestimonials))
	router.POST("/api/testimonials", auth.Require(testimonials.CreateTestimonial))
	router.PUT("/api/testimonials/:id", auth.Require(testimonials.EditTestimonial))
	router.DELETE("/api/testimonials/:id", auth.Require(testimonials.DeleteTestimonial))
	router.POST("/api/public/testimonials", rl.Limit(testimonials.PublicCreate(cooldown)))
}

func AddGalleryRoutes(router *httprouter.Router, auth *middleware.Authenticator, rl *ratelim.RateLimiter) {
	router.GET("/api/gallery", rl.Limit(gallery.GetGallery))
	router.POST("/api/gallery", auth.Require(gallery.CreateGalleryItem))
	router.DELETE("/api/gallery/:id", auth.Require(gallery.DeleteGalleryItem))
}

func AddSiteRoutes(router *httprouter.Router, auth *middleware.Authenticator, rl *ratelim.RateLimiter) {
	router.GET("/api/site", rl.Limit(site.GetSiteSettings))
	router.PUT("/api/site", auth.Require(site.UpdateSiteSettings))
	router.PUT("/api/admin/credentials", auth.Require(site.UpdateAdminCredentials))
}

func AddUploadRoutes(router *httprouter.Router, auth *middleware.Authenticator, store filemgr.Store) {
	router.POST("/api/upload", auth.Require(filedrop.UploadHandler(store)))
}

// AddStaticRoutes serves /media and /images. In production uploaded media
// streams from the bucket; locally it serves from the uploads directory.
func AddStaticRoutes(router *httprouter.Router, store filemgr.Store) {
	if bucket, ok := store.(*filemgr.BucketStore); ok {
		router.GET("/media/:filename", filedrop.ServeBucketMedia(bucket))
	} else {
		router.ServeFiles("/media/*filepath", http.Dir(filemgr.UploadsDir()))
	}
	router.ServeFiles("/images/*filepath", http.Dir("./images"))
}

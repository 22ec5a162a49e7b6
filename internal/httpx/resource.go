package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backend-suite/internal/crud"
)

// Resource registers the uniform CRUD routes for one entity under path:
//
//	POST   /<path>       create  -> 201 entity
//	GET    /<path>       list    -> 200 [entity]
//	GET    /<path>/:id   get     -> 200 entity | 404
//	PUT    /<path>/:id   update  -> 200 merged entity | 404
//	DELETE /<path>/:id   delete  -> 200 | 404
//
// Entity-specific finders are registered by the apps next to this.
func Resource[T any](rg *gin.RouterGroup, path string, svc *crud.Service[T]) {
	rg.POST("/"+path, func(c *gin.Context) {
		var rec T
		if err := c.ShouldBindJSON(&rec); err != nil {
			BadRequest(c, "invalid request body: "+err.Error())
			return
		}
		created, err := svc.Create(c.Request.Context(), &rec)
		if err != nil {
			Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	})

	rg.GET("/"+path, func(c *gin.Context) {
		recs, err := svc.List(c.Request.Context())
		if err != nil {
			Error(c, err)
			return
		}
		if recs == nil {
			recs = []T{}
		}
		c.JSON(http.StatusOK, recs)
	})

	rg.GET("/"+path+"/:id", func(c *gin.Context) {
		id, ok := IDParam(c)
		if !ok {
			return
		}
		rec, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			Error(c, err)
			return
		}
		c.JSON(http.StatusOK, rec)
	})

	rg.PUT("/"+path+"/:id", func(c *gin.Context) {
		id, ok := IDParam(c)
		if !ok {
			return
		}
		var patch T
		if err := c.ShouldBindJSON(&patch); err != nil {
			BadRequest(c, "invalid request body: "+err.Error())
			return
		}
		merged, err := svc.Update(c.Request.Context(), id, &patch)
		if err != nil {
			Error(c, err)
			return
		}
		c.JSON(http.StatusOK, merged)
	})

	rg.DELETE("/"+path+"/:id", func(c *gin.Context) {
		id, ok := IDParam(c)
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": id})
	})
}

// ListResponse writes a filtered-finder result, normalizing nil to [].
func ListResponse[T any](c *gin.Context, recs []T, err error) {
	if err != nil {
		Error(c, err)
		return
	}
	if recs == nil {
		recs = []T{}
	}
	c.JSON(http.StatusOK, recs)
}

package api

import (
	"github.com/gin-contrib/cors"
	"github.com/wb-go/wbf/ginext"

	"rolecall/cmd/middleware"
	"rolecall/internal/service"
)

type Routers struct {
	Service service.Service
}

func NewRouters(r *Routers) *ginext.Engine {
	app := ginext.New("release")

	app.Use(middleware.LoggingMiddleware())
	app.Use(cors.Default())
	apiGroup := app.Group("/v1")

	apiGroup.POST("/meetings", r.Service.CreateMeeting)
	apiGroup.GET("/meetings", r.Service.GetAllMeetings)
	apiGroup.GET("/meetings/:id", r.Service.GetMeeting)
	apiGroup.PATCH("/meetings/:id", r.Service.UpdateMeeting)
	apiGroup.DELETE("/meetings/:id", r.Service.DeleteMeeting)

	apiGroup.POST("/meetings/:id/slots", r.Service.AddSlot)
	apiGroup.POST("/meetings/:id/slots/pair", r.Service.AddSpeakerEvaluatorPair)
	apiGroup.DELETE("/meetings/:id/slots/:slotId", r.Service.DeleteSlot)
	apiGroup.POST("/meetings/:id/slots/:slotId/book", r.Service.BookSlot)
	apiGroup.POST("/meetings/:id/slots/:slotId/release", r.Service.ReleaseSlot)
	apiGroup.PUT("/meetings/:id/slots/:slotId/assign", r.Service.AssignSlot)

	apiGroup.POST("/meetings/:id/rsvp", r.Service.RSVP)

	apiGroup.GET("/curriculum/pathways", r.Service.Pathways)
	apiGroup.GET("/curriculum/levels", r.Service.Levels)
	apiGroup.GET("/curriculum/projects", r.Service.Projects)

	return app
}

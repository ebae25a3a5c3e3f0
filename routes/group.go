package routes

import (
	"net/http"

	"github.com/clubhive/clubhive-be/app"
	"github.com/clubhive/clubhive-be/auth"
	"github.com/clubhive/clubhive-be/config"
	"github.com/clubhive/clubhive-be/middleware"
	"github.com/clubhive/clubhive-be/model"
	"github.com/clubhive/clubhive-be/util"
	"github.com/gin-gonic/gin"
)

type groupRoutes struct {
	controller *app.TopicController
}

func AddGroupRoutes(group *gin.RouterGroup, controller *app.TopicController, resolver *auth.Resolver) {
	routes := groupRoutes{controller}
	groups := group.Group("/groups", middleware.GenAuth(resolver))
	groups.GET("/:name/profile", util.HandlerWrapper(routes.getGroupProfile, &util.HandlerOpts{}))
	groups.GET("/:name/members", util.HandlerWrapper(routes.listGroupMembers, &util.HandlerOpts{}))
	groups.GET("/:name/topics", util.HandlerWrapper(routes.listGroupTopics, &util.HandlerOpts{}))
	groups.POST("/:name/topics", middleware.RequireLogin(), util.HandlerWrapper(routes.createTopic, &util.HandlerOpts{}))
}

func (gr *groupRoutes) getGroupProfile(c *gin.Context) (interface{}, *util.HTTPError) {
	limit, offset, httpErr := parsePage(c, config.DefaultProfilePageSize)
	if httpErr != nil {
		return nil, httpErr
	}
	profile, err := gr.controller.GetGroupProfile(c, middleware.MustGetAuth(c), c.Param("name"), limit, offset)
	if err != nil {
		return nil, util.BuildDomainHTTPErr(err)
	}
	return profile, nil
}

func (gr *groupRoutes) listGroupMembers(c *gin.Context) (interface{}, *util.HTTPError) {
	limit, offset, httpErr := parsePage(c, config.DefaultMemberPageSize)
	if httpErr != nil {
		return nil, httpErr
	}
	filter, ok := model.ParseMemberFilter(c.Query("type"))
	if !ok {
		return nil, &util.HTTPError{
			Status:  http.StatusBadRequest,
			Message: "member type must be one of mod, normal, all",
		}
	}
	page, err := gr.controller.ListGroupMembers(c, c.Param("name"), filter, limit, offset)
	if err != nil {
		return nil, util.BuildDomainHTTPErr(err)
	}
	return page, nil
}

func (gr *groupRoutes) listGroupTopics(c *gin.Context) (interface{}, *util.HTTPError) {
	limit, offset, httpErr := parsePage(c, config.DefaultTopicPageSize)
	if httpErr != nil {
		return nil, httpErr
	}
	page, err := gr.controller.ListGroupTopics(c, middleware.MustGetAuth(c), c.Param("name"), limit, offset)
	if err != nil {
		return nil, util.BuildDomainHTTPErr(err)
	}
	return page, nil
}

type createTopicReq struct {
	Title   string `json:"title" binding:"required,min=1"`
	Content string `json:"content" binding:"required,min=1"`
}

func (gr *groupRoutes) createTopic(c *gin.Context) (interface{}, *util.HTTPError) {
	var req createTopicReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	id, err := gr.controller.CreateTopic(c, middleware.MustGetAuth(c), c.Param("name"), req.Title, req.Content)
	if err != nil {
		return nil, util.BuildDomainHTTPErr(err)
	}
	return gin.H{
		"id": id,
	}, nil
}

func parsePage(c *gin.Context, defaultLimit int) (limit, offset int, httpErr *util.HTTPError) {
	if limit, httpErr = util.ParseIntOrDefault(c.Query("limit"), defaultLimit); httpErr != nil {
		return 0, 0, httpErr
	}
	if offset, httpErr = util.ParseIntOrDefault(c.Query("offset"), 0); httpErr != nil {
		return 0, 0, httpErr
	}
	return limit, offset, nil
}

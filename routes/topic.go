package routes

import (
	"github.com/clubhive/clubhive-be/app"
	"github.com/clubhive/clubhive-be/auth"
	"github.com/clubhive/clubhive-be/config"
	"github.com/clubhive/clubhive-be/middleware"
	"github.com/clubhive/clubhive-be/util"
	"github.com/gin-gonic/gin"
)

type topicRoutes struct {
	controller *app.TopicController
}

func AddTopicRoutes(group *gin.RouterGroup, controller *app.TopicController, resolver *auth.Resolver) {
	routes := topicRoutes{controller}

	topics := group.Group("/groups/-/topics", middleware.GenAuth(resolver))
	topics.GET("/:id", util.HandlerWrapper(routes.getTopicDetails, &util.HandlerOpts{}))
	topics.POST("/:id/replies", middleware.RequireLogin(), util.HandlerWrapper(routes.createReply, &util.HandlerOpts{}))

	subjects := group.Group("/subjects", middleware.GenAuth(resolver))
	subjects.GET("/:id/topics", util.HandlerWrapper(routes.listSubjectTopics, &util.HandlerOpts{}))
}

func (tr *topicRoutes) getTopicDetails(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	details, err := tr.controller.GetTopicDetails(c, middleware.MustGetAuth(c), id)
	if err != nil {
		return nil, util.BuildDomainHTTPErr(err)
	}
	return details, nil
}

func (tr *topicRoutes) listSubjectTopics(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	limit, offset, httpErr := parsePage(c, config.DefaultTopicPageSize)
	if httpErr != nil {
		return nil, httpErr
	}
	page, err := tr.controller.ListSubjectTopics(c, middleware.MustGetAuth(c), id, limit, offset)
	if err != nil {
		return nil, util.BuildDomainHTTPErr(err)
	}
	return page, nil
}

type createReplyReq struct {
	Content string `json:"content" binding:"required,min=1"`
	// ReplyTo is the id of the reply being responded to; 0 replies to the
	// topic itself.
	ReplyTo int64 `json:"replyTo"`
}

func (tr *topicRoutes) createReply(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	var req createReplyReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	reply, err := tr.controller.CreateReply(c, middleware.MustGetAuth(c), id, req.Content, req.ReplyTo)
	if err != nil {
		return nil, util.BuildDomainHTTPErr(err)
	}
	return reply, nil
}

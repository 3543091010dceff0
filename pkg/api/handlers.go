// Package api exposes the letter grid over HTTP.
package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/bastiangx/wordgrid/internal/logger"
	"github.com/bastiangx/wordgrid/pkg/a11y"
	"github.com/bastiangx/wordgrid/pkg/grid"
	"github.com/bastiangx/wordgrid/pkg/letters"
	"github.com/gin-gonic/gin"
)

// Item is a rendered row in JSON form
type Item struct {
	Text         string      `json:"text"`
	Action       a11y.Action `json:"action"`
	Announcement string      `json:"announcement"`
}

// WordsResponse is the body of the words endpoint
type WordsResponse struct {
	Letter string `json:"letter"`
	Words  []Item `json:"words"`
	Count  int    `json:"count"`
}

// API holds dependencies for the handlers
type API struct {
	grid     grid.Service
	maxLimit int
}

// NewAPI creates the handler set. maxLimit caps the limit query parameter.
func NewAPI(g grid.Service, maxLimit int) *API {
	return &API{grid: g, maxLimit: maxLimit}
}

// NewRouter returns a gin engine with middleware and routes installed.
func NewRouter(g grid.Service, maxLimit int) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestIDMiddleware(), LoggerMiddleware(logger.New("http")))
	SetupRoutes(router, NewAPI(g, maxLimit))
	return router
}

// SetupRoutes defines all the API routes.
func SetupRoutes(router *gin.Engine, api *API) {
	router.GET("/health", api.HealthHandler)
	router.GET("/stats", api.StatsHandler)

	letterRoutes := router.Group("/letters")
	{
		letterRoutes.GET("", api.LettersHandler)
		letterRoutes.GET("/:letter/words", api.WordsHandler)
	}

	router.GET("/words/:word/search", api.SearchHandler)

	router.NoRoute(func(c *gin.Context) {
		SendError(c, http.StatusNotFound, ErrorCodeNotFound, "no route for "+c.Request.URL.Path)
	})
}

// HealthHandler reports liveness
func (api *API) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// StatsHandler reports corpus statistics
func (api *API) StatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.grid.Stats())
}

// LettersHandler lists the grid
func (api *API) LettersHandler(c *gin.Context) {
	rows := api.grid.Letters()
	c.JSON(http.StatusOK, gin.H{"letters": toItems(rows), "count": len(rows)})
}

// WordsHandler samples words under a letter.
// Query: limit (optional, 0..maxLimit)
func (api *API) WordsHandler(c *gin.Context) {
	letter, err := letters.Parse(c.Param("letter"))
	if err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidLetter, err.Error())
		return
	}

	limit := min(api.grid.Limit(), api.maxLimit)
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 || limit > api.maxLimit {
			SendError(c, http.StatusBadRequest, ErrorCodeInvalidLimit,
				fmt.Sprintf("limit must be an integer between 0 and %d", api.maxLimit))
			return
		}
	}

	rows := api.grid.WordsN(letter, limit)
	c.JSON(http.StatusOK, WordsResponse{
		Letter: letter.String(),
		Words:  toItems(rows),
		Count:  len(rows),
	})
}

// SearchHandler sends the client to the search URL for a word.
// With open=true the URL is handed to the server side sink instead.
func (api *API) SearchHandler(c *gin.Context) {
	word := strings.TrimSpace(c.Param("word"))
	if word == "" {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidWord, "word is required")
		return
	}

	if c.Query("open") != "true" {
		c.Redirect(http.StatusFound, api.grid.URL(word))
		return
	}

	u, err := api.grid.Open(c.Request.Context(), word)
	if err != nil {
		SendError(c, http.StatusBadGateway, ErrorCodeOpenFailed, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": u, "opened": true})
}

func toItems(rows []grid.Row) []Item {
	items := make([]Item, len(rows))
	for i, r := range rows {
		items[i] = Item{Text: r.Text, Action: r.Action, Announcement: a11y.Announcement(r.Action)}
	}
	return items
}

package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/daniilsolovey/discussion-board/internal/board"
	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

const (
	msgBadRequest    = "bad request"
	msgNotFound      = "not found"
	msgInternalError = "internal server error"
)

// ArticlesRequest is decoded from the GET /api/articles query string.
type ArticlesRequest struct {
	SortBy string
	Order  string
	Topic  string
}

func (r ArticlesRequest) Filter() board.ArticleFilter {
	f := board.ArticleFilter{SortBy: r.SortBy, Order: r.Order}
	if r.Topic != "" {
		topic := r.Topic
		f.Topic = &topic
	}
	return f
}

// Pinger reports whether the storage is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type BoardHandler struct {
	board *board.Manager
	db    Pinger
	log   *slog.Logger
}

func NewBoardHandler(m *board.Manager, db Pinger, log *slog.Logger) *BoardHandler {
	return &BoardHandler{
		board: m,
		db:    db,
		log:   log,
	}
}

func (h *BoardHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, ErrorResponse{Msg: message})
}

// handleBoardError picks the status from the board error kind.
func (h *BoardHandler) handleBoardError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, board.ErrInvalidInput):
		return h.handleError(c, err, http.StatusBadRequest, msgBadRequest)
	case errors.Is(err, board.ErrNotFound):
		return h.handleError(c, err, http.StatusNotFound, msgNotFound)
	default:
		return h.handleError(c, err, http.StatusInternalServerError, msgInternalError)
	}
}

// Endpoints handles GET /api
// @Summary Describe endpoints
// @Description Returns the API document of every available endpoint
// @Tags api
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} rest.ErrorResponse
// @Router /api [get]
func (h *BoardHandler) Endpoints(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, msgInternalError)
	}

	return c.JSON(http.StatusOK, map[string]json.RawMessage{"endpoints": json.RawMessage(doc)})
}

// Topics handles GET /api/topics
// @Summary Get all topics
// @Tags topics
// @Produce json
// @Success 200 {object} rest.TopicsResponse
// @Failure 500 {object} rest.ErrorResponse
// @Router /api/topics [get]
func (h *BoardHandler) Topics(c echo.Context) error {
	topics, err := h.board.Topics(c.Request().Context())
	if err != nil {
		return h.handleBoardError(c, err)
	}

	return c.JSON(http.StatusOK, TopicsResponse{Topics: NewTopics(topics)})
}

// Articles handles GET /api/articles
// @Summary Get articles
// @Description Lists articles without body, each with its comment count. Sorted by created_at desc unless sort_by and order are given
// @Tags articles
// @Produce json
// @Param sort_by query string false "Sort column" Enums(article_id, title, topic, author, created_at, votes, comment_count, article_img_url)
// @Param order query string false "Sort direction" Enums(asc, desc)
// @Param topic query string false "Topic slug"
// @Success 200 {object} rest.ArticlesResponse
// @Failure 404,500 {object} rest.ErrorResponse
// @Router /api/articles [get]
func (h *BoardHandler) Articles(c echo.Context) error {
	// a query echo cannot parse has no allow-listed value
	query, err := url.ParseQuery(c.Request().URL.RawQuery)
	if err != nil {
		return h.handleBoardError(c, fmt.Errorf("%w: %w", board.ErrNotFound, err))
	}

	var req ArticlesRequest
	if err := urlstruct.Unmarshal(c.Request().Context(), query, &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, msgBadRequest)
	}

	articles, err := h.board.Articles(c.Request().Context(), req.Filter())
	if err != nil {
		return h.handleBoardError(c, err)
	}

	return c.JSON(http.StatusOK, ArticlesResponse{Articles: NewArticleSummaries(articles)})
}

// ArticleByID handles GET /api/articles/:article_id
// @Summary Get article by ID
// @Description Returns a single article with body and comment count
// @Tags articles
// @Produce json
// @Param article_id path int true "Article ID"
// @Success 200 {object} rest.ArticleResponse
// @Failure 400,404,500 {object} rest.ErrorResponse
// @Router /api/articles/{article_id} [get]
func (h *BoardHandler) ArticleByID(c echo.Context) error {
	id, err := board.ParseID(c.Param("article_id"))
	if err != nil {
		return h.handleBoardError(c, err)
	}

	article, err := h.board.ArticleByID(c.Request().Context(), id)
	if err != nil {
		return h.handleBoardError(c, err)
	}

	return c.JSON(http.StatusOK, ArticleResponse{Article: NewArticleDetail(*article)})
}

// AdjustVotes handles PATCH /api/articles/:article_id
// @Summary Adjust article votes
// @Description Adds inc_votes (may be negative) to the article votes and returns the updated article
// @Tags articles
// @Accept json
// @Produce json
// @Param article_id path int true "Article ID"
// @Param input body board.VoteInput true "Vote delta"
// @Success 200 {object} rest.Article
// @Failure 400,404,500 {object} rest.ErrorResponse
// @Router /api/articles/{article_id} [patch]
func (h *BoardHandler) AdjustVotes(c echo.Context) error {
	id, err := board.ParseID(c.Param("article_id"))
	if err != nil {
		return h.handleBoardError(c, err)
	}

	var in board.VoteInput
	if err := bindJSON(c, &in); err != nil {
		return h.handleBoardError(c, err)
	}

	article, err := h.board.AdjustVotes(c.Request().Context(), id, in)
	if err != nil {
		return h.handleBoardError(c, err)
	}

	return c.JSON(http.StatusOK, NewArticle(*article))
}

// ArticleComments handles GET /api/articles/:article_id/comments
// @Summary Get article comments
// @Description Returns the comments of an article, newest first
// @Tags comments
// @Produce json
// @Param article_id path int true "Article ID"
// @Success 200 {array} rest.Comment
// @Failure 400,404,500 {object} rest.ErrorResponse
// @Router /api/articles/{article_id}/comments [get]
func (h *BoardHandler) ArticleComments(c echo.Context) error {
	id, err := board.ParseID(c.Param("article_id"))
	if err != nil {
		return h.handleBoardError(c, err)
	}

	comments, err := h.board.ArticleComments(c.Request().Context(), id)
	if err != nil {
		return h.handleBoardError(c, err)
	}

	return c.JSON(http.StatusOK, NewComments(comments))
}

// AddComment handles POST /api/articles/:article_id/comments
// @Summary Add a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param article_id path int true "Article ID"
// @Param input body board.CommentInput true "Comment"
// @Success 201 {object} rest.CreatedComment
// @Failure 400,404,500 {object} rest.ErrorResponse
// @Router /api/articles/{article_id}/comments [post]
func (h *BoardHandler) AddComment(c echo.Context) error {
	id, err := board.ParseID(c.Param("article_id"))
	if err != nil {
		return h.handleBoardError(c, err)
	}

	var in board.CommentInput
	if err := bindJSON(c, &in); err != nil {
		return h.handleBoardError(c, err)
	}

	comment, err := h.board.AddComment(c.Request().Context(), id, in)
	if err != nil {
		return h.handleBoardError(c, err)
	}

	return c.JSON(http.StatusCreated, NewCreatedComment(*comment))
}

// DeleteComment handles DELETE /api/articles/:article_id/comments/:comment_id
// @Summary Delete a comment
// @Tags comments
// @Param article_id path int true "Article ID"
// @Param comment_id path int true "Comment ID"
// @Success 204
// @Failure 400,404,500 {object} rest.ErrorResponse
// @Router /api/articles/{article_id}/comments/{comment_id} [delete]
func (h *BoardHandler) DeleteComment(c echo.Context) error {
	articleID, err := board.ParseID(c.Param("article_id"))
	if err != nil {
		return h.handleBoardError(c, err)
	}

	commentID, err := board.ParseID(c.Param("comment_id"))
	if err != nil {
		return h.handleBoardError(c, err)
	}

	n, err := h.board.DeleteComment(c.Request().Context(), articleID, commentID)
	if err != nil {
		return h.handleBoardError(c, err)
	} else if n == 0 {
		return h.handleError(c, board.ErrNotFound, http.StatusNotFound, msgNotFound)
	}

	return c.NoContent(http.StatusNoContent)
}

// Users handles GET /api/users
// @Summary Get all users
// @Tags users
// @Produce json
// @Success 200 {array} rest.User
// @Failure 500 {object} rest.ErrorResponse
// @Router /api/users [get]
func (h *BoardHandler) Users(c echo.Context) error {
	users, err := h.board.Users(c.Request().Context())
	if err != nil {
		return h.handleBoardError(c, err)
	}

	return c.JSON(http.StatusOK, NewUsers(users))
}

// bindJSON decodes the request body. Malformed JSON is an invalid input.
func bindJSON(c echo.Context, v interface{}) error {
	if err := json.NewDecoder(c.Request().Body).Decode(v); err != nil {
		if errors.Is(err, board.ErrInvalidInput) {
			return err
		}
		return fmt.Errorf("%w: %w", board.ErrInvalidInput, err)
	}
	return nil
}

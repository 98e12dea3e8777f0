package board

import (
	"context"
	"errors"
	"fmt"

	"github.com/daniilsolovey/discussion-board/internal/db"
)

var (
	// ErrInvalidInput marks a malformed request: a non-numeric id or a missing or mistyped field.
	ErrInvalidInput = errors.New("bad request")
	// ErrNotFound marks a missing entity, and also a value outside an accepted set
	// (sort column, order, topic filter, vote floor).
	ErrNotFound = errors.New("not found")
)

// Storage is the persistence collaborator. *db.Repository implements it.
type Storage interface {
	Topics(ctx context.Context) ([]db.Topic, error)
	Users(ctx context.Context) ([]db.User, error)
	Articles(ctx context.Context, q db.ArticleQuery) ([]db.ArticleWithCommentCount, error)
	ArticleByID(ctx context.Context, articleID int) (*db.ArticleDetail, error)
	ArticleExists(ctx context.Context, articleID int) (bool, error)
	CommentsByArticle(ctx context.Context, articleID int) ([]db.Comment, error)
	InsertComment(ctx context.Context, c *db.Comment) error
	IncrementVotes(ctx context.Context, articleID, delta int) (*db.Article, error)
	DeleteComment(ctx context.Context, commentID int) (int, error)
}

type Manager struct {
	db       Storage
	validate *Validator
}

func NewManager(storage Storage) *Manager {
	return &Manager{
		db:       storage,
		validate: NewValidator(),
	}
}

func (m *Manager) Topics(ctx context.Context) ([]Topic, error) {
	list, err := m.db.Topics(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get topics: %w", err)
	}

	return NewTopics(list), nil
}

func (m *Manager) Users(ctx context.Context) ([]User, error) {
	list, err := m.db.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get users: %w", err)
	}

	return NewUsers(list), nil
}

// Articles lists articles sorted by filter.SortBy (created_at by default) in filter.Order
// (desc by default), optionally restricted to one topic.
// An unknown sort column or order, or a topic with no articles, yields ErrNotFound.
func (m *Manager) Articles(ctx context.Context, filter ArticleFilter) ([]ArticleSummary, error) {
	q, err := db.NewArticleQuery(filter.SortBy, filter.Order, filter.Topic)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	list, err := m.db.Articles(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("db get articles: %w", err)
	}

	if q.Topic != nil && len(list) == 0 {
		return nil, fmt.Errorf("%w: no articles for topic %q", ErrNotFound, *q.Topic)
	}

	return NewArticleSummaries(list), nil
}

func (m *Manager) ArticleByID(ctx context.Context, articleID int) (*ArticleDetail, error) {
	if err := ValidateID(articleID); err != nil {
		return nil, err
	}

	article, err := m.db.ArticleByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("db get article by id: %w", err)
	} else if article == nil {
		return nil, articleNotFound(articleID)
	}

	result := NewArticleDetail(*article)
	return &result, nil
}

// ArticleComments returns the comments of an existing article, newest first.
// An article without comments yields an empty slice.
func (m *Manager) ArticleComments(ctx context.Context, articleID int) ([]Comment, error) {
	if err := m.ensureArticle(ctx, articleID); err != nil {
		return nil, err
	}

	list, err := m.db.CommentsByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("db get comments: %w", err)
	}

	return NewComments(list), nil
}

// AddComment creates a comment with zero votes on an existing article.
// A username that does not reference a user is reported as ErrNotFound.
func (m *Manager) AddComment(ctx context.Context, articleID int, in CommentInput) (*Comment, error) {
	if err := ValidateID(articleID); err != nil {
		return nil, err
	}

	if err := m.validate.Struct(in); err != nil {
		return nil, err
	}

	if err := m.ensureArticle(ctx, articleID); err != nil {
		return nil, err
	}

	c := &db.Comment{
		ArticleID: articleID,
		Author:    in.Username,
		Body:      in.Body,
	}

	if err := m.db.InsertComment(ctx, c); err != nil {
		if errors.Is(err, db.ErrConstraintViolation) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, fmt.Errorf("db insert comment: %w", err)
	}

	result := NewComment(*c)
	return &result, nil
}

// AdjustVotes applies votes = votes + inc_votes as one statement and returns the updated article.
// Driving votes below the allowed range is reported as ErrNotFound.
func (m *Manager) AdjustVotes(ctx context.Context, articleID int, in VoteInput) (*Article, error) {
	if err := ValidateID(articleID); err != nil {
		return nil, err
	}

	if err := m.validate.Struct(in); err != nil {
		return nil, err
	}

	if err := m.ensureArticle(ctx, articleID); err != nil {
		return nil, err
	}

	article, err := m.db.IncrementVotes(ctx, articleID, int(*in.IncVotes))
	if errors.Is(err, db.ErrConstraintViolation) {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	} else if err != nil {
		return nil, fmt.Errorf("db increment votes: %w", err)
	} else if article == nil {
		// deleted between the existence check and the update
		return nil, articleNotFound(articleID)
	}

	result := NewArticle(*article)
	return &result, nil
}

// DeleteComment removes a comment by its id and returns the number of rows removed (0 or 1).
// articleID is validated but does not scope the delete.
func (m *Manager) DeleteComment(ctx context.Context, articleID, commentID int) (int, error) {
	if err := ValidateID(articleID); err != nil {
		return 0, err
	}

	if err := ValidateID(commentID); err != nil {
		return 0, err
	}

	n, err := m.db.DeleteComment(ctx, commentID)
	if err != nil {
		return 0, fmt.Errorf("db delete comment: %w", err)
	}

	return n, nil
}

func (m *Manager) ensureArticle(ctx context.Context, articleID int) error {
	if err := ValidateID(articleID); err != nil {
		return err
	}

	exists, err := m.db.ArticleExists(ctx, articleID)
	if err != nil {
		return fmt.Errorf("db check article: %w", err)
	} else if !exists {
		return articleNotFound(articleID)
	}

	return nil
}

func articleNotFound(articleID int) error {
	return fmt.Errorf("article %d: %w", articleID, ErrNotFound)
}

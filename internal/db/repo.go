package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// ErrConstraintViolation is returned when a write is rejected by a table constraint
// (foreign key, not null, check) or pushes a value out of the column range.
var ErrConstraintViolation = errors.New("constraint violation")

const sqlStateNumericOutOfRange = "22003"

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// Topics returns all topics ordered by slug.
func (r *Repository) Topics(ctx context.Context) ([]Topic, error) {
	topics := []Topic{}
	err := r.db.ModelContext(ctx, &topics).
		OrderExpr(`"t"."slug" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query topics: %w", err)
	}

	return topics, nil
}

// Users returns all users ordered by username.
func (r *Repository) Users(ctx context.Context) ([]User, error) {
	users := []User{}
	err := r.db.ModelContext(ctx, &users).
		OrderExpr(`"t"."username" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}

	return users, nil
}

// Articles lists articles with their comment counts. Ordering comes from the allow-listed
// expression of q; the topic filter is always a bound parameter.
// Rows with equal sort keys come back in storage order.
func (r *Repository) Articles(ctx context.Context, q ArticleQuery) ([]ArticleWithCommentCount, error) {
	articles := []ArticleWithCommentCount{}
	query := r.db.ModelContext(ctx, &articles).
		ColumnExpr(articleSummaryColumns).
		ColumnExpr(commentCountColumn).
		Join(commentsJoin)

	if q.Topic != nil {
		query = query.Where(`"t"."topic" = ?`, *q.Topic)
	}

	err := query.
		GroupExpr(`"t"."article_id"`).
		OrderExpr(q.OrderExpr()).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}

	return articles, nil
}

// ArticleByID returns the article with its comment count, or nil if there is none.
func (r *Repository) ArticleByID(ctx context.Context, articleID int) (*ArticleDetail, error) {
	article := &ArticleDetail{}
	err := r.db.ModelContext(ctx, article).
		ColumnExpr(articleDetailColumns).
		ColumnExpr(commentCountColumn).
		Join(commentsJoin).
		Where(`"t"."article_id" = ?`, articleID).
		GroupExpr(`"t"."article_id"`).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get article by id: %w", err)
	}

	return article, nil
}

func (r *Repository) ArticleExists(ctx context.Context, articleID int) (bool, error) {
	exists, err := r.db.ModelContext(ctx, (*Article)(nil)).
		Where(`"t"."article_id" = ?`, articleID).
		Exists()

	if err != nil {
		return false, fmt.Errorf("failed to check article exists: %w", err)
	}

	return exists, nil
}

// CommentsByArticle returns the comments of an article, newest first.
func (r *Repository) CommentsByArticle(ctx context.Context, articleID int) ([]Comment, error) {
	comments := []Comment{}
	err := r.db.ModelContext(ctx, &comments).
		Where(`"t"."article_id" = ?`, articleID).
		OrderExpr(`"t"."created_at" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}

	return comments, nil
}

// InsertComment stores c and fills in the generated id, votes and created_at.
func (r *Repository) InsertComment(ctx context.Context, c *Comment) error {
	_, err := r.db.ModelContext(ctx, c).
		Returning("*").
		Insert()

	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", wrapConstraintError(err))
	}

	return nil
}

// IncrementVotes adds delta to the article votes in a single statement and returns the updated
// article, or nil if there is no such article.
func (r *Repository) IncrementVotes(ctx context.Context, articleID, delta int) (*Article, error) {
	article := &Article{}
	res, err := r.db.ModelContext(ctx, article).
		Set(`"votes" = "votes" + ?`, delta).
		Where(`"t"."article_id" = ?`, articleID).
		Returning("*").
		Update()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to increment votes: %w", wrapConstraintError(err))
	}

	if res.RowsAffected() == 0 {
		return nil, nil
	}

	return article, nil
}

// DeleteComment removes the comment and reports how many rows were deleted.
func (r *Repository) DeleteComment(ctx context.Context, commentID int) (int, error) {
	res, err := r.db.ModelContext(ctx, (*Comment)(nil)).
		Where(`"t"."comment_id" = ?`, commentID).
		Delete()

	if err != nil {
		return 0, fmt.Errorf("failed to delete comment: %w", err)
	}

	return res.RowsAffected(), nil
}

func wrapConstraintError(err error) error {
	var pgErr pg.Error
	if !errors.As(err, &pgErr) {
		return err
	}

	if pgErr.IntegrityViolation() || pgErr.Field('C') == sqlStateNumericOutOfRange {
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	}

	return err
}

package db

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnknownSortColumn = errors.New("unknown sort column")
	ErrUnknownSortOrder  = errors.New("unknown sort order")
)

// SortColumn is a column articles can be ordered by.
type SortColumn string

const (
	SortByArticleID     SortColumn = "article_id"
	SortByTitle         SortColumn = "title"
	SortByTopic         SortColumn = "topic"
	SortByAuthor        SortColumn = "author"
	SortByCreatedAt     SortColumn = "created_at"
	SortByVotes         SortColumn = "votes"
	SortByCommentCount  SortColumn = "comment_count"
	SortByArticleImgURL SortColumn = "article_img_url"
)

// sortColumnExprs is the allow-list. Only these expressions are ever placed into ORDER BY.
var sortColumnExprs = map[SortColumn]string{
	SortByArticleID:     `"t"."article_id"`,
	SortByTitle:         `"t"."title"`,
	SortByTopic:         `"t"."topic"`,
	SortByAuthor:        `"t"."author"`,
	SortByCreatedAt:     `"t"."created_at"`,
	SortByVotes:         `"t"."votes"`,
	SortByCommentCount:  `"comment_count"`,
	SortByArticleImgURL: `"t"."article_img_url"`,
}

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

const (
	DefaultSortColumn = SortByCreatedAt
	DefaultSortOrder  = OrderDesc
)

// ArticleWithCommentCount is an article listing row: the article without its body plus the
// number of comments referencing it.
type ArticleWithCommentCount struct {
	tableName struct{} `pg:"articles,alias:t,discard_unknown_columns"`

	ID            int       `pg:"article_id,pk"`
	Title         string    `pg:"title,use_zero"`
	Topic         string    `pg:"topic,use_zero"`
	Author        string    `pg:"author,use_zero"`
	CreatedAt     time.Time `pg:"created_at"`
	Votes         int       `pg:"votes,use_zero"`
	ArticleImgURL string    `pg:"article_img_url,use_zero"`
	CommentCount  int       `pg:"comment_count,use_zero"`
}

// ArticleDetail is a full article with its comment count.
type ArticleDetail struct {
	tableName struct{} `pg:"articles,alias:t,discard_unknown_columns"`

	ID            int       `pg:"article_id,pk"`
	Title         string    `pg:"title,use_zero"`
	Topic         string    `pg:"topic,use_zero"`
	Author        string    `pg:"author,use_zero"`
	Body          string    `pg:"body,use_zero"`
	CreatedAt     time.Time `pg:"created_at"`
	Votes         int       `pg:"votes,use_zero"`
	ArticleImgURL string    `pg:"article_img_url,use_zero"`
	CommentCount  int       `pg:"comment_count,use_zero"`
}

const (
	articleSummaryColumns = `"t"."article_id", "t"."title", "t"."topic", "t"."author", "t"."created_at", "t"."votes", "t"."article_img_url"`
	articleDetailColumns  = `"t"."article_id", "t"."title", "t"."topic", "t"."author", "t"."body", "t"."created_at", "t"."votes", "t"."article_img_url"`
	commentCountColumn    = `COUNT("c"."comment_id")::int AS "comment_count"`
	commentsJoin          = `LEFT JOIN "comments" AS "c" ON "c"."article_id" = "t"."article_id"`
)

// ArticleQuery describes an article listing: sort column, direction and an optional topic filter.
type ArticleQuery struct {
	SortBy SortColumn
	Order  SortOrder
	Topic  *string
}

// ParseSortColumn returns the SortColumn for s. An empty s yields DefaultSortColumn.
func ParseSortColumn(s string) (SortColumn, error) {
	if s == "" {
		return DefaultSortColumn, nil
	}

	col := SortColumn(s)
	if _, ok := sortColumnExprs[col]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSortColumn, s)
	}

	return col, nil
}

// ParseSortOrder returns the SortOrder for s. Matching is case-sensitive; an empty s yields DefaultSortOrder.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case "":
		return DefaultSortOrder, nil
	case OrderAsc, OrderDesc:
		return SortOrder(s), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownSortOrder, s)
}

// NewArticleQuery builds an ArticleQuery from raw request values.
// An empty topic is treated as no filter.
func NewArticleQuery(sortBy, order string, topic *string) (ArticleQuery, error) {
	col, err := ParseSortColumn(sortBy)
	if err != nil {
		return ArticleQuery{}, err
	}

	dir, err := ParseSortOrder(order)
	if err != nil {
		return ArticleQuery{}, err
	}

	q := ArticleQuery{SortBy: col, Order: dir}
	if topic != nil && *topic != "" {
		t := *topic
		q.Topic = &t
	}

	return q, nil
}

// OrderExpr returns the ORDER BY expression for q. Zero values fall back to the defaults;
// values outside the allow-list also fall back so that no unchecked text reaches the query.
func (q ArticleQuery) OrderExpr() string {
	expr, ok := sortColumnExprs[q.SortBy]
	if !ok {
		expr = sortColumnExprs[DefaultSortColumn]
	}

	switch q.Order {
	case OrderAsc:
		return expr + " ASC"
	case OrderDesc:
		return expr + " DESC"
	default:
		return expr + " DESC"
	}
}

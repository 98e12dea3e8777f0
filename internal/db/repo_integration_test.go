//go:build integration

package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"testing"

	"github.com/go-pg/pg/v10"
)

var (
	testDB   *pg.DB
	testRepo *Repository
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	opt, err := pg.ParseURL(TestDBURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse database URL: %v\n", err)
		os.Exit(1)
	}

	testDB = pg.Connect(opt)

	if err := testDB.Ping(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect to test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := ResetPublicSchema(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to reset schema: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := RunMigrations(ctx, MigrationsDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := EnsureTablesExist(ctx, testDB, TestTables); err != nil {
		fmt.Fprintf(os.Stderr, "schema verification failed: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := LoadTestData(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load test data: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	testRepo = New(testDB)

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func TestArticles_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	t.Run("DefaultsToCreatedAtDesc", func(t *testing.T) {
		q, err := NewArticleQuery("", "", nil)
		if err != nil {
			t.Fatalf("NewArticleQuery: %v", err)
		}

		articles, err := repo.Articles(ctx, q)
		if err != nil {
			t.Fatalf("Articles: %v", err)
		}
		if len(articles) != 13 {
			t.Fatalf("expected 13 articles, got %d", len(articles))
		}

		for i := 1; i < len(articles); i++ {
			if articles[i-1].CreatedAt.Before(articles[i].CreatedAt) {
				t.Fatalf("articles not sorted by created_at desc at index %d", i)
			}
		}
	})

	t.Run("CommentCountIsExact", func(t *testing.T) {
		articles, err := repo.Articles(ctx, ArticleQuery{})
		if err != nil {
			t.Fatalf("Articles: %v", err)
		}

		want := map[int]int{1: 11, 2: 0, 3: 2, 5: 2, 6: 1, 9: 2, 13: 0}
		for _, a := range articles {
			if n, ok := want[a.ID]; ok && a.CommentCount != n {
				t.Errorf("article %d: expected comment_count %d, got %d", a.ID, n, a.CommentCount)
			}
		}
	})

	sortTests := []struct {
		name   string
		sortBy string
		order  string
		less   func(a, b ArticleWithCommentCount) bool
	}{
		{
			name:   "TitleDesc",
			sortBy: "title",
			order:  "desc",
			less:   func(a, b ArticleWithCommentCount) bool { return a.Title > b.Title },
		},
		{
			name:   "AuthorAsc",
			sortBy: "author",
			order:  "asc",
			less:   func(a, b ArticleWithCommentCount) bool { return a.Author < b.Author },
		},
		{
			name:   "VotesDesc",
			sortBy: "votes",
			order:  "",
			less:   func(a, b ArticleWithCommentCount) bool { return a.Votes > b.Votes },
		},
		{
			name:   "CommentCountDesc",
			sortBy: "comment_count",
			order:  "desc",
			less:   func(a, b ArticleWithCommentCount) bool { return a.CommentCount > b.CommentCount },
		},
		{
			name:   "ArticleIDAsc",
			sortBy: "article_id",
			order:  "asc",
			less:   func(a, b ArticleWithCommentCount) bool { return a.ID < b.ID },
		},
	}

	for _, tt := range sortTests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewArticleQuery(tt.sortBy, tt.order, nil)
			if err != nil {
				t.Fatalf("NewArticleQuery: %v", err)
			}

			articles, err := repo.Articles(ctx, q)
			if err != nil {
				t.Fatalf("Articles: %v", err)
			}

			ok := sort.SliceIsSorted(articles, func(i, j int) bool {
				return tt.less(articles[i], articles[j])
			})
			if !ok {
				t.Fatalf("articles are not sorted by %s %s", tt.sortBy, tt.order)
			}
		})
	}

	t.Run("TopicFilter", func(t *testing.T) {
		articles, err := repo.Articles(ctx, ArticleQuery{Topic: strPtr("mitch")})
		if err != nil {
			t.Fatalf("Articles: %v", err)
		}
		if len(articles) != 12 {
			t.Fatalf("expected 12 mitch articles, got %d", len(articles))
		}
		for _, a := range articles {
			if a.Topic != "mitch" {
				t.Errorf("article %d has topic %q", a.ID, a.Topic)
			}
		}
	})

	t.Run("TopicFilterIsBound", func(t *testing.T) {
		articles, err := repo.Articles(ctx, ArticleQuery{Topic: strPtr(`mitch' OR '1'='1`)})
		if err != nil {
			t.Fatalf("Articles: %v", err)
		}
		if len(articles) != 0 {
			t.Fatalf("expected no articles, got %d", len(articles))
		}
	})
}

func TestArticleByID_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	t.Run("ReturnsArticleWithCommentCount", func(t *testing.T) {
		article, err := repo.ArticleByID(ctx, 1)
		if err != nil {
			t.Fatalf("ArticleByID: %v", err)
		}
		if article == nil {
			t.Fatal("expected article, got nil")
		}
		if article.CommentCount != 11 {
			t.Errorf("expected 11 comments, got %d", article.CommentCount)
		}
		if article.Body == "" {
			t.Error("expected body to be loaded")
		}
	})

	t.Run("ZeroComments", func(t *testing.T) {
		article, err := repo.ArticleByID(ctx, 2)
		if err != nil {
			t.Fatalf("ArticleByID: %v", err)
		}
		if article == nil || article.CommentCount != 0 {
			t.Fatalf("expected article 2 with 0 comments, got %+v", article)
		}
	})

	t.Run("MissingReturnsNil", func(t *testing.T) {
		article, err := repo.ArticleByID(ctx, 9999)
		if err != nil {
			t.Fatalf("ArticleByID: %v", err)
		}
		if article != nil {
			t.Fatalf("expected nil, got %+v", article)
		}
	})
}

func TestCommentsByArticle_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	comments, err := repo.CommentsByArticle(ctx, 1)
	if err != nil {
		t.Fatalf("CommentsByArticle: %v", err)
	}
	if len(comments) != 11 {
		t.Fatalf("expected 11 comments, got %d", len(comments))
	}
	for i := 1; i < len(comments); i++ {
		if comments[i-1].CreatedAt.Before(comments[i].CreatedAt) {
			t.Fatalf("comments not sorted by created_at desc at index %d", i)
		}
	}

	empty, err := repo.CommentsByArticle(ctx, 2)
	if err != nil {
		t.Fatalf("CommentsByArticle: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", empty)
	}
}

func TestIncrementVotes_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	up, err := repo.IncrementVotes(ctx, 1, 10)
	if err != nil {
		t.Fatalf("IncrementVotes: %v", err)
	}
	if up == nil || up.Votes != 110 {
		t.Fatalf("expected 110 votes, got %+v", up)
	}

	down, err := repo.IncrementVotes(ctx, 1, -10)
	if err != nil {
		t.Fatalf("IncrementVotes: %v", err)
	}
	if down.Votes != 100 {
		t.Fatalf("expected 100 votes, got %d", down.Votes)
	}

	missing, err := repo.IncrementVotes(ctx, 9999, 1)
	if err != nil {
		t.Fatalf("IncrementVotes: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing article, got %+v", missing)
	}
}

func TestIncrementVotesBelowFloor_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	_, err := repo.IncrementVotes(ctx, 1, -1000)
	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected ErrConstraintViolation, got %v", err)
	}
}

func TestInsertComment_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	c := &Comment{ArticleID: 2, Author: "butter_bridge", Body: "first!"}
	if err := repo.InsertComment(ctx, c); err != nil {
		t.Fatalf("InsertComment: %v", err)
	}
	if c.ID == 0 {
		t.Fatal("expected generated comment id")
	}
	if c.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
	if c.Votes != 0 {
		t.Errorf("expected 0 votes, got %d", c.Votes)
	}
}

func TestInsertCommentUnknownUser_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	err := repo.InsertComment(ctx, &Comment{ArticleID: 2, Author: "nobody", Body: "hello"})
	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected ErrConstraintViolation, got %v", err)
	}
}

func TestDeleteComment_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	n, err := repo.DeleteComment(ctx, 18)
	if err != nil {
		t.Fatalf("DeleteComment: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row deleted, got %d", n)
	}

	n, err = repo.DeleteComment(ctx, 18)
	if err != nil {
		t.Fatalf("DeleteComment: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 rows deleted on repeat, got %d", n)
	}
}

func TestTopicsAndUsers_Integration(t *testing.T) {
	topics, err := testRepo.Topics(context.Background())
	if err != nil {
		t.Fatalf("Topics: %v", err)
	}
	if len(topics) != 3 {
		t.Fatalf("expected 3 topics, got %d", len(topics))
	}

	users, err := testRepo.Users(context.Background())
	if err != nil {
		t.Fatalf("Users: %v", err)
	}
	if len(users) != 4 {
		t.Fatalf("expected 4 users, got %d", len(users))
	}
	for _, u := range users {
		if u.Username == "" || u.Name == "" || u.AvatarURL == "" {
			t.Errorf("incomplete user: %+v", u)
		}
	}
}

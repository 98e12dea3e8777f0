// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Article struct {
		ID, Title, Topic, Author, Body, CreatedAt, Votes, ArticleImgURL string
	}
	Comment struct {
		ID, ArticleID, Author, Body, Votes, CreatedAt string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	Topic struct {
		Slug, Description string
	}
	User struct {
		Username, Name, AvatarURL string
	}
}{
	Article: struct {
		ID, Title, Topic, Author, Body, CreatedAt, Votes, ArticleImgURL string
	}{
		ID:            "article_id",
		Title:         "title",
		Topic:         "topic",
		Author:        "author",
		Body:          "body",
		CreatedAt:     "created_at",
		Votes:         "votes",
		ArticleImgURL: "article_img_url",
	},
	Comment: struct {
		ID, ArticleID, Author, Body, Votes, CreatedAt string
	}{
		ID:        "comment_id",
		ArticleID: "article_id",
		Author:    "author",
		Body:      "body",
		Votes:     "votes",
		CreatedAt: "created_at",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	Topic: struct {
		Slug, Description string
	}{
		Slug:        "slug",
		Description: "description",
	},
	User: struct {
		Username, Name, AvatarURL string
	}{
		Username:  "username",
		Name:      "name",
		AvatarURL: "avatar_url",
	},
}

var Tables = struct {
	Article struct {
		Name, Alias string
	}
	Comment struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
	Topic struct {
		Name, Alias string
	}
	User struct {
		Name, Alias string
	}
}{
	Article: struct {
		Name, Alias string
	}{
		Name:  "articles",
		Alias: "t",
	},
	Comment: struct {
		Name, Alias string
	}{
		Name:  "comments",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	Topic: struct {
		Name, Alias string
	}{
		Name:  "topics",
		Alias: "t",
	},
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
}

type Article struct {
	tableName struct{} `pg:"articles,alias:t,discard_unknown_columns"`

	ID            int       `pg:"article_id,pk"`
	Title         string    `pg:"title,use_zero"`
	Topic         string    `pg:"topic,use_zero"`
	Author        string    `pg:"author,use_zero"`
	Body          string    `pg:"body,use_zero"`
	CreatedAt     time.Time `pg:"created_at"`
	Votes         int       `pg:"votes,use_zero"`
	ArticleImgURL string    `pg:"article_img_url,use_zero"`
}

type Comment struct {
	tableName struct{} `pg:"comments,alias:t,discard_unknown_columns"`

	ID        int       `pg:"comment_id,pk"`
	ArticleID int       `pg:"article_id,use_zero"`
	Author    string    `pg:"author,use_zero"`
	Body      string    `pg:"body,use_zero"`
	Votes     int       `pg:"votes,use_zero"`
	CreatedAt time.Time `pg:"created_at"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type Topic struct {
	tableName struct{} `pg:"topics,alias:t,discard_unknown_columns"`

	Slug        string `pg:"slug,pk"`
	Description string `pg:"description,use_zero"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	Username  string `pg:"username,pk"`
	Name      string `pg:"name,use_zero"`
	AvatarURL string `pg:"avatar_url,use_zero"`
}

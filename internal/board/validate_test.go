package board

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		token   string
		want    int
		wantErr bool
	}{
		{token: "1", want: 1},
		{token: "9999", want: 9999},
		{token: "0", wantErr: true},
		{token: "-3", wantErr: true},
		{token: "tested", wantErr: true},
		{token: "1.5", wantErr: true},
		{token: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseID(tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVoteInput_Decode(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		body    string
		want    int
		wantErr bool
	}{
		{name: "positive", body: `{"inc_votes": 10}`, want: 10},
		{name: "negative", body: `{"inc_votes": -10}`, want: -10},
		{name: "zero", body: `{"inc_votes": 0}`, want: 0},
		{name: "numeric string", body: `{"inc_votes": "10"}`, want: 10},
		{name: "word", body: `{"inc_votes": "tested"}`, wantErr: true},
		{name: "fraction", body: `{"inc_votes": 1.5}`, wantErr: true},
		{name: "bool", body: `{"inc_votes": true}`, wantErr: true},
		{name: "null", body: `{"inc_votes": null}`, wantErr: true},
		{name: "missing", body: `{}`, wantErr: true},
		{name: "other field only", body: `{"votes": 3}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in VoteInput
			err := json.Unmarshal([]byte(tt.body), &in)
			if err == nil {
				err = v.Struct(in)
			}

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, in.IncVotes)
			assert.Equal(t, tt.want, int(*in.IncVotes))
		})
	}
}

func TestValidator_CommentInput(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.Struct(CommentInput{Username: "lurker", Body: "hi"}))

	err := v.Struct(CommentInput{})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "body is required, username is required")
}

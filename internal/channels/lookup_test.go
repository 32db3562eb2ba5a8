package channels_test

import (
	"context"
	"errors"
	"testing"

	"multitube/internal/channels"
)

func TestFindGroup(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	news := s.CreateGroup(ctx, "Noticias Ñandú", urlA)
	music := s.CreateGroup(ctx, "Music", urlB)

	cases := []struct {
		ref  string
		want string
	}{
		{news.ID, news.ID},
		{"2", music.ID},
		{"1", news.ID},
		{"music", music.ID},
		{"  MUSIC ", music.ID},
		{"noticias ñandú", news.ID},
	}
	for _, tc := range cases {
		got, err := s.FindGroup(tc.ref)
		if err != nil {
			t.Fatalf("FindGroup(%q) returned error: %v", tc.ref, err)
		}
		if got.ID != tc.want {
			t.Fatalf("FindGroup(%q) = %q, want %q", tc.ref, got.ID, tc.want)
		}
	}

	for _, ref := range []string{"", "3", "0", "podcasts"} {
		if _, err := s.FindGroup(ref); !errors.Is(err, channels.ErrGroupNotFound) {
			t.Fatalf("FindGroup(%q) expected ErrGroupNotFound, got %v", ref, err)
		}
	}
}

package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "largebnb_seeder/internal/adapters/redis"
)

func TestCache_SetGetDel(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	rows := []map[string]string{{"name": "Trastevere Loft", "latitude": "41.88"}}
	if err := c.Set(ctx, "feed:listings:rome", rows, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got []map[string]string
	ok, err := c.Get(ctx, "feed:listings:rome", &got)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if len(got) != 1 || got[0]["name"] != "Trastevere Loft" {
		t.Fatalf("unexpected rows: %+v", got)
	}

	if err := c.Del(ctx, "feed:listings:rome"); err != nil {
		t.Fatalf("del: %v", err)
	}
	ok, err = c.Get(ctx, "feed:listings:rome", &got)
	if err != nil {
		t.Fatalf("get after del: %v", err)
	}
	if ok {
		t.Fatal("expected miss after del")
	}
}

package export

import (
	"context"
	"strings"
	"testing"
)

func TestMemoryDestination(t *testing.T) {
	d := NewMemoryDestination()
	ctx := context.Background()

	loc, err := d.Put(ctx, "b.csv", strings.NewReader("bb"), 2)
	if err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if loc != "memory://b.csv" {
		t.Errorf("location = %q, want memory://b.csv", loc)
	}
	if _, err := d.Put(ctx, "a.csv", strings.NewReader("a"), 1); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	if _, err := d.Put(ctx, "c.csv", strings.NewReader("c"), 3); err == nil {
		t.Error("Put() with size mismatch should return error")
	}
	if _, err := d.Put(ctx, "a.csv", strings.NewReader("z"), 1); err == nil {
		t.Error("Put() with duplicate name should return error")
	}

	got, ok := d.Get("b.csv")
	if !ok || string(got) != "bb" {
		t.Errorf("Get(b.csv) = %q, %v; want bb, true", got, ok)
	}
	if _, ok := d.Get("c.csv"); ok {
		t.Error("Get(c.csv) found an export that failed to store")
	}

	names := d.Names()
	if strings.Join(names, ",") != "a.csv,b.csv" {
		t.Errorf("Names() = %v, want [a.csv b.csv]", names)
	}
	if err := d.ValidateSetup(); err != nil {
		t.Errorf("ValidateSetup() error = %v", err)
	}
}

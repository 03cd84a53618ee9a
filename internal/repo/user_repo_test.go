package repo

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/creatorlab/creatorlab-backend/internal/domain"
)

func TestCreateUser_NormalizesAndLooksUp(t *testing.T) {
	db := newGenRepoDB(t, &domain.User{})

	u, err := CreateUser(context.Background(), db, "  Ann@Example.COM ", " Ann ", "hash", ProviderPassword)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.ID == "" || u.Email != "ann@example.com" || u.Name != "Ann" {
		t.Fatalf("unexpected user: %+v", u)
	}

	got, err := GetUserByEmail(context.Background(), db, "ANN@example.com")
	if err != nil || got.ID != u.ID {
		t.Fatalf("GetUserByEmail: %+v, %v", got, err)
	}
	byID, err := GetUser(context.Background(), db, u.ID)
	if err != nil || byID.PasswordHash != "hash" {
		t.Fatalf("GetUser: %+v, %v", byID, err)
	}

	taken, err := EmailTaken(context.Background(), db, "ann@EXAMPLE.com")
	if err != nil || !taken {
		t.Fatalf("EmailTaken = %v, %v; want true", taken, err)
	}
	taken, _ = EmailTaken(context.Background(), db, "bob@example.com")
	if taken {
		t.Fatalf("unexpected taken for new email")
	}
}

func TestCreateUser_DuplicateEmailFails(t *testing.T) {
	db := newGenRepoDB(t, &domain.User{})
	if _, err := CreateUser(context.Background(), db, "a@b.c", "A", "", ProviderGoogle); err != nil {
		t.Fatal(err)
	}
	_, err := CreateUser(context.Background(), db, "A@B.C", "A2", "h", ProviderPassword)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected gorm.ErrDuplicatedKey, got %v", err)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	db := newGenRepoDB(t, &domain.User{})
	if _, err := GetUser(context.Background(), db, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := GetUserByEmail(context.Background(), db, "x@y.z"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

package repositories

import (
	"errors"
	"fmt"
	"testing"
)

func TestRepositoryErrorMatching(t *testing.T) {
	notFound := NotFoundError("space", "abc")
	if !IsNotFound(notFound) {
		t.Error("Expected NotFoundError to match ErrNotFound")
	}
	if notFound.Error() != `get space "abc": space not found` {
		t.Errorf("Unexpected message %q", notFound.Error())
	}

	wrapped := fmt.Errorf("get space: %w", notFound)
	if !IsNotFound(wrapped) {
		t.Error("Expected wrapped error to match ErrNotFound")
	}

	conn := ConnectionError("dynamodb", errors.New("dial tcp: timeout"))
	if !IsConnection(conn) {
		t.Error("Expected ConnectionError to match ErrConnection")
	}
	if IsNotFound(conn) {
		t.Error("Connection error must not match ErrNotFound")
	}

	empty := NewRepositoryError("update", "space", "abc", ErrNoAttributes)
	if !errors.Is(empty, ErrNoAttributes) {
		t.Error("Expected ErrNoAttributes to be wrapped")
	}
}

func TestRepositoryErrorMessage(t *testing.T) {
	tests := []struct {
		err  *RepositoryError
		want string
	}{
		{NewRepositoryError("delete", "space", "abc", errors.New("boom")), `delete space "abc": boom`},
		{NewRepositoryError("list", "space", "", errors.New("boom")), "list space: boom"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

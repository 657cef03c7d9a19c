package server

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/toadoapp/toado/internal/model"
	"github.com/toadoapp/toado/internal/querysql"
)

// createTestServer creates an initialized store in a temp directory.
func createTestServer(t *testing.T) *Server {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	if err := s.Init(context.Background()); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	return s
}

// addTestTask inserts a minimal task and returns its id.
func addTestTask(t *testing.T, s *Server, name string, priority int64) int64 {
	t.Helper()
	id, err := s.AddTask(context.Background(), querysql.AddTask{
		Name:     name,
		Priority: priority,
		Status:   model.StatusIncomplete,
	})
	if err != nil {
		t.Fatalf("AddTask(%q) failed: %v", name, err)
	}
	return id
}

// addTestProject inserts a minimal project and returns its id.
func addTestProject(t *testing.T, s *Server, name string) int64 {
	t.Helper()
	id, err := s.AddProject(context.Background(), querysql.AddProject{Name: name})
	if err != nil {
		t.Fatalf("AddProject(%q) failed: %v", name, err)
	}
	return id
}

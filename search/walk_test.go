package search

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kakkky/codesearch/types"
)

var projectRoot = filepath.Join("testdata", "project")

func projectPath(elem ...string) types.FilePath {
	return types.FilePath(filepath.Join(append([]string{projectRoot}, elem...)...))
}

func TestCollectFiles(t *testing.T) {
	tests := []struct {
		name   string
		root   string
		filter types.Extension
		want   []types.FilePath
	}{
		{
			name: "skips files without extension and unknown extensions",
			root: projectRoot,
			want: []types.FilePath{
				projectPath("docs", "notes.md"),
				projectPath("person.c"),
				projectPath("sub", "circle.cpp"),
			},
		},
		{
			name:   "filters by extension",
			root:   projectRoot,
			filter: "cpp",
			want:   []types.FilePath{projectPath("sub", "circle.cpp")},
		},
		{
			name: "root may be a single file",
			root: string(projectPath("person.c")),
			want: []types.FilePath{projectPath("person.c")},
		},
		{
			name:   "filter on a non-searchable extension finds nothing",
			root:   projectRoot,
			filter: "bin",
			want:   []types.FilePath{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CollectFiles(tt.root, tt.filter)
			if err != nil {
				t.Fatalf("CollectFiles() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CollectFiles() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCollectFilesMissingRoot(t *testing.T) {
	if _, err := CollectFiles(filepath.Join("testdata", "does-not-exist"), ""); err == nil {
		t.Error("CollectFiles() error = nil, want error")
	}
}

func TestFindTextInFile(t *testing.T) {
	m, err := NewMatcher("age", false)
	if err != nil {
		t.Fatalf("NewMatcher() error = %v", err)
	}
	got, err := FindTextInFile(projectPath("person.c"), m)
	if err != nil {
		t.Fatalf("FindTextInFile() error = %v", err)
	}
	want := []types.Hit{
		{Line: 4, Text: "    int age;"},
		{Line: 8, Text: "    p->age = newAge;"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FindTextInFile() mismatch (-want +got):\n%s", diff)
	}
}

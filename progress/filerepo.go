package progress

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// fileDocument is the on-disk shape: a single JSON object keyed by
// collection name, mirroring the browser-local store this backend
// replaces.
type fileDocument struct {
	CourseProgress []CourseProgress `json:"courseProgress"`
}

// FileRepository persists the whole progress collection in one JSON file.
// Every write rewrites the full collection, so concurrent writers are
// last-write-wins at collection granularity. An absent or unparseable
// file reads as an empty collection.
type FileRepository struct {
	mu   sync.Mutex
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) load() []CourseProgress {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return []CourseProgress{}
	}
	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil || doc.CourseProgress == nil {
		return []CourseProgress{}
	}
	return doc.CourseProgress
}

func (r *FileRepository) save(records []CourseProgress) error {
	data, err := json.Marshal(fileDocument{CourseProgress: records})
	if err != nil {
		return err
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(r.path, data, 0o644)
}

func (r *FileRepository) GetAll() ([]CourseProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(), nil
}

func (r *FileRepository) GetByUserAndCourse(userID, courseID string) (CourseProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.load() {
		if p.UserID == userID && p.CourseID == courseID {
			return p, nil
		}
	}
	return CourseProgress{}, ErrNotFound
}

func (r *FileRepository) GetAllForUser(userID string) ([]CourseProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []CourseProgress
	for _, p := range r.load() {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *FileRepository) Upsert(record CourseProgress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	records := r.load()
	for i, p := range records {
		if p.UserID == record.UserID && p.CourseID == record.CourseID {
			records[i] = record
			return r.save(records)
		}
	}
	records = append(records, record)
	return r.save(records)
}

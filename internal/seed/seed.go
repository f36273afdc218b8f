// Package seed loads the category catalog and starter questions from YAML.
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/trivia-api/backend/internal/domain/category"
	"github.com/trivia-api/backend/internal/domain/question"
	"github.com/trivia-api/backend/internal/store"
)

type File struct {
	Categories []category.Category `yaml:"categories"`
	Questions  []Question          `yaml:"questions"`
}

type Question struct {
	Question   string `yaml:"question"`
	Answer     string `yaml:"answer"`
	Difficulty int    `yaml:"difficulty"`
	Category   int    `yaml:"category"`
}

// Result reports what Apply wrote.
type Result struct {
	Categories int
	Questions  int
}

// Parse decodes a single YAML document, rejecting unknown keys.
func Parse(data []byte) (*File, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, errors.New("parse seed: multiple YAML documents are not supported")
		}
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	return Parse(data)
}

func (f *File) validate() error {
	seen := make(map[int]bool, len(f.Categories))
	for i, c := range f.Categories {
		if c.ID <= 0 {
			return fmt.Errorf("seed: categories[%d]: id must be positive", i)
		}
		if c.Type == "" {
			return fmt.Errorf("seed: categories[%d]: type is required", i)
		}
		if seen[c.ID] {
			return fmt.Errorf("seed: categories[%d]: duplicate id %d", i, c.ID)
		}
		seen[c.ID] = true
	}

	dir := f.directory()
	for i, q := range f.Questions {
		if _, err := question.New(q.Question, q.Answer, q.Difficulty, q.Category); err != nil {
			return fmt.Errorf("seed: questions[%d]: %w", i, err)
		}
		// The API tolerates dangling categories; seed data should not ship them.
		if _, err := dir.Get(q.Category); err != nil {
			return fmt.Errorf("seed: questions[%d]: category %d is not declared", i, q.Category)
		}
	}
	return nil
}

func (f *File) directory() *category.Directory {
	cats := make([]*category.Category, len(f.Categories))
	for i := range f.Categories {
		cats[i] = &f.Categories[i]
	}
	return category.NewDirectory(cats)
}

// Apply upserts every category in id order, then inserts the starter
// questions only when the store holds no questions yet, so re-running it
// is harmless.
func Apply(ctx context.Context, s store.Store, f *File) (Result, error) {
	var res Result
	for _, c := range f.directory().List() {
		if err := s.SaveCategory(ctx, c); err != nil {
			return res, fmt.Errorf("seed category %d: %w", c.ID, err)
		}
		res.Categories++
	}

	existing, err := s.ListQuestions(ctx)
	if err != nil {
		return res, err
	}
	if len(existing) > 0 {
		return res, nil
	}

	for _, sq := range f.Questions {
		q := &question.Question{
			Question:   sq.Question,
			Answer:     sq.Answer,
			Difficulty: sq.Difficulty,
			Category:   sq.Category,
		}
		if err := s.AddQuestion(ctx, q); err != nil {
			return res, fmt.Errorf("seed question %q: %w", sq.Question, err)
		}
		res.Questions++
	}
	return res, nil
}

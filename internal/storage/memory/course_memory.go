// Package memory keeps the working set of courses in process.
package memory

import (
	"TubeCourse/internal/app_errors"
	"TubeCourse/internal/models"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// CourseMemory is the in-process course store. Every value going in or out is
// deep-copied.
type CourseMemory struct {
	mu      sync.RWMutex
	courses map[string]models.Course
	order   []string
	now     func() time.Time
}

func NewCourseMemory() *CourseMemory {
	return &CourseMemory{
		courses: make(map[string]models.Course),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Add puts a course into the working set under its own id, replacing any
// course with the same id. A course without an id gets a new one.
func (m *CourseMemory) Add(course models.Course) models.Course {
	m.mu.Lock()
	defer m.mu.Unlock()
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	m.put(course)
	return course.Clone()
}

func (m *CourseMemory) GetByID(id string) (models.Course, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.courses[id]
	if !ok {
		return models.Course{}, false
	}
	return c.Clone(), true
}

// Load replaces the whole working set.
func (m *CourseMemory) Load(courses []models.Course) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.courses = make(map[string]models.Course, len(courses))
	m.order = m.order[:0]
	for _, c := range courses {
		m.put(c)
	}
}

// All returns the working set in insertion order.
func (m *CourseMemory) All() []models.Course {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Course, 0, len(m.order))
	for _, id := range m.order {
		c := m.courses[id]
		out = append(out, c.Clone())
	}
	return out
}

func (m *CourseMemory) put(c models.Course) {
	if _, exists := m.courses[c.ID]; !exists {
		m.order = append(m.order, c.ID)
	}
	m.courses[c.ID] = c.Clone()
}

func (m *CourseMemory) Create(_ context.Context, course models.Course) (models.Course, error) {
	now := m.now()
	course.ID = uuid.NewString()
	course.CreatedAt = &now
	course.UpdatedAt = &now

	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(course)
	return course.Clone(), nil
}

func (m *CourseMemory) Get(_ context.Context, id string) (models.Course, error) {
	c, ok := m.GetByID(id)
	if !ok {
		return models.Course{}, app_errors.ErrCourseNotFound
	}
	return c, nil
}

// Update replaces the stored document, keeping id and creation time.
func (m *CourseMemory) Update(_ context.Context, id string, course models.Course) (models.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, ok := m.courses[id]
	if !ok {
		return models.Course{}, app_errors.ErrCourseNotFound
	}
	now := m.now()
	course.ID = id
	course.CreatedAt = old.CreatedAt
	course.UpdatedAt = &now
	m.put(course)
	return course.Clone(), nil
}

package services

import (
	"errors"
	"math"
	"time"

	"restodir-backend/models"

	"gorm.io/gorm"
)

const DefaultPageSize = 20

// SearchFilter holds the optional constraints for a directory query.
// Zero-value text fields and a nil IsKosher impose no constraint.
type SearchFilter struct {
	Name          string
	Address       string
	CuisineType   string
	IsKosher      *bool
	CurrentlyOpen bool
	Page          int
	Limit         int
}

type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

type SearchResult struct {
	Records    []models.Restaurant
	Pagination Pagination
}

// DirectoryService answers the public read queries. Now is injectable so
// open-now evaluation can be pinned to a fixed instant in tests; it defaults
// to time.Now.
type DirectoryService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewDirectoryService(db *gorm.DB) *DirectoryService {
	return &DirectoryService{DB: db, Now: time.Now}
}

// applyFilter builds the query for everything expressible as a SQL
// predicate. Caller values are only ever passed as bound parameters.
// CurrentlyOpen is handled separately by post-filtering because the schedule
// lives in a JSON document column.
func applyFilter(db *gorm.DB, filter SearchFilter) *gorm.DB {
	query := db.Model(&models.Restaurant{})
	if filter.CuisineType != "" {
		query = query.Where("cuisine_type = ?", filter.CuisineType)
	}
	if filter.IsKosher != nil {
		query = query.Where("is_kosher = ?", *filter.IsKosher)
	}
	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Name+"%")
	}
	if filter.Address != "" {
		query = query.Where("LOWER(address) LIKE LOWER(?)", "%"+filter.Address+"%")
	}
	return query
}

func normalize(filter *SearchFilter) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = DefaultPageSize
	}
}

// Search returns the page of records matching the filter plus pagination
// metadata. Total counts every match regardless of the page window; an empty
// result is not an error.
func (s *DirectoryService) Search(filter SearchFilter) (*SearchResult, error) {
	normalize(&filter)

	if filter.CurrentlyOpen {
		return s.searchOpenNow(filter)
	}

	query := applyFilter(s.DB, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (filter.Page - 1) * filter.Limit
	records := []models.Restaurant{}
	if err := query.Order("id ASC").Offset(offset).Limit(filter.Limit).Find(&records).Error; err != nil {
		return nil, err
	}

	return &SearchResult{
		Records:    records,
		Pagination: paginate(total, filter.Page, filter.Limit),
	}, nil
}

// searchOpenNow evaluates the schedule document in-process so the behavior
// is identical on every store, then windows the filtered set.
func (s *DirectoryService) searchOpenNow(filter SearchFilter) (*SearchResult, error) {
	var all []models.Restaurant
	// id ascending keeps the window stable across pages
	if err := applyFilter(s.DB, filter).Order("id ASC").Find(&all).Error; err != nil {
		return nil, err
	}

	now := s.Now()
	open := []models.Restaurant{}
	for _, r := range all {
		if r.OpeningHours.IsOpenAt(now) {
			open = append(open, r)
		}
	}

	total := int64(len(open))
	start := (filter.Page - 1) * filter.Limit
	if start > len(open) {
		start = len(open)
	}
	end := start + filter.Limit
	if end > len(open) {
		end = len(open)
	}

	return &SearchResult{
		Records:    open[start:end],
		Pagination: paginate(total, filter.Page, filter.Limit),
	}, nil
}

func paginate(total int64, page, limit int) Pagination {
	return Pagination{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: int(math.Ceil(float64(total) / float64(limit))),
	}
}

// GetByID fetches a single record or ErrNotFound.
func (s *DirectoryService) GetByID(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.DB.First(&restaurant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

// ListOpenNow returns every restaurant open at this instant, id ascending,
// with no pagination window.
func (s *DirectoryService) ListOpenNow() ([]models.Restaurant, error) {
	var all []models.Restaurant
	if err := s.DB.Order("id ASC").Find(&all).Error; err != nil {
		return nil, err
	}

	now := s.Now()
	open := []models.Restaurant{}
	for _, r := range all {
		if r.OpeningHours.IsOpenAt(now) {
			open = append(open, r)
		}
	}
	return open, nil
}

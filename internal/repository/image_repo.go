package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/timmy/quotebg/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BackgroundImageRepository handles image inventory data operations.
type BackgroundImageRepository struct {
	db *gorm.DB
}

// NewBackgroundImageRepository creates a new BackgroundImageRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *BackgroundImageRepository: repository instance bound to db.
func NewBackgroundImageRepository(db *gorm.DB) *BackgroundImageRepository {
	return &BackgroundImageRepository{db: db}
}

// Create inserts a new image record.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - image: image record to persist.
// Returns:
//   - error: non-nil if the insert fails.
func (r *BackgroundImageRepository) Create(ctx context.Context, image *domain.BackgroundImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

// Upsert creates or updates an image record keyed by source fields, so
// repopulation runs are idempotent.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - image: image record to create or update.
// Returns:
//   - error: non-nil if the upsert fails.
func (r *BackgroundImageRepository) Upsert(ctx context.Context, image *domain.BackgroundImage) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "source"}, {Name: "source_id"}},
		UpdateAll: true,
	}).Create(image).Error
}

// GetByID retrieves an image by its ID.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: image ID.
// Returns:
//   - *domain.BackgroundImage: image record, or nil when no record has
//     this ID.
//   - error: non-nil if the lookup fails; a missing record is not an error.
func (r *BackgroundImageRepository) GetByID(ctx context.Context, id string) (*domain.BackgroundImage, error) {
	var image domain.BackgroundImage
	if err := r.db.WithContext(ctx).First(&image, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get image: %w", err)
	}
	return &image, nil
}

// GetByIDs retrieves images by a list of IDs.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - ids: list of image IDs.
// Returns:
//   - []domain.BackgroundImage: matching image records.
//   - error: non-nil if the query fails.
func (r *BackgroundImageRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.BackgroundImage, error) {
	if len(ids) == 0 {
		return []domain.BackgroundImage{}, nil
	}
	var images []domain.BackgroundImage
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to get images by IDs: %w", err)
	}
	return images, nil
}

// FindMatches queries the inventory for images in the given category whose
// mood is one of moods and, when keywords is non-empty, whose keyword set
// intersects keywords (any one keyword qualifies). Result order is
// store-defined; no re-ranking happens here.
//
// Keywords are stored as a JSON array in a text column, so containment is
// tested with a quoted LIKE match, which works identically on SQLite and
// PostgreSQL.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - category: inventory partition to search.
//   - moods: allowed mood tags.
//   - keywords: keyword set to intersect with; empty skips the keyword filter.
//   - limit: maximum number of records to return.
// Returns:
//   - []domain.BackgroundImage: up to limit matching records.
//   - error: non-nil if the query fails.
func (r *BackgroundImageRepository) FindMatches(ctx context.Context, category string, moods, keywords []string, limit int) ([]domain.BackgroundImage, error) {
	query := r.db.WithContext(ctx).
		Where("category = ?", category).
		Where("mood IN ?", moods)

	if len(keywords) > 0 {
		cond := r.db.Where("keywords LIKE ?", keywordPattern(keywords[0]))
		for _, kw := range keywords[1:] {
			cond = cond.Or("keywords LIKE ?", keywordPattern(kw))
		}
		query = query.Where(cond)
	}

	var images []domain.BackgroundImage
	if err := query.Limit(limit).Find(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to query matching images: %w", err)
	}
	return images, nil
}

// keywordPattern builds the LIKE pattern matching a JSON-encoded array
// element exactly, so "cat" never matches a stored "caterpillar".
func keywordPattern(keyword string) string {
	return `%"` + keyword + `"%`
}

// List retrieves images by category with pagination. An empty category
// means all categories. This doubles as the unfiltered fallback sample for
// the match path.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - category: category name to filter by; empty means all.
//   - limit: maximum number of records to return.
//   - offset: number of records to skip.
// Returns:
//   - []domain.BackgroundImage: matching image records.
//   - error: non-nil if the query fails.
func (r *BackgroundImageRepository) List(ctx context.Context, category string, limit, offset int) ([]domain.BackgroundImage, error) {
	query := r.db.WithContext(ctx)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	var images []domain.BackgroundImage
	if err := query.
		Limit(limit).
		Offset(offset).
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// GetCategories retrieves all unique categories present in the inventory.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - []string: distinct category names.
//   - error: non-nil if the query fails.
func (r *BackgroundImageRepository) GetCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := r.db.WithContext(ctx).
		Model(&domain.BackgroundImage{}).
		Distinct("category").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Count returns the total number of inventory records.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - int64: number of records.
//   - error: non-nil if the query fails.
func (r *BackgroundImageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.BackgroundImage{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// groupCount is a row shape for grouped count queries.
type groupCount struct {
	Key   string
	Count int64
}

// CountGrouped returns record counts grouped by the given column. Only the
// category, mood, and source columns are accepted.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - column: one of "category", "mood", "source".
// Returns:
//   - map[string]int64: count per distinct column value.
//   - error: non-nil if the column is unsupported or the query fails.
func (r *BackgroundImageRepository) CountGrouped(ctx context.Context, column string) (map[string]int64, error) {
	switch column {
	case "category", "mood", "source":
	default:
		return nil, fmt.Errorf("unsupported grouping column: %s", column)
	}

	var rows []groupCount
	if err := r.db.WithContext(ctx).
		Model(&domain.BackgroundImage{}).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return counts, nil
}

// DeleteAll removes every inventory record. Used only by administrative
// repopulation.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - error: non-nil if the delete fails.
func (r *BackgroundImageRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&domain.BackgroundImage{}).Error
}

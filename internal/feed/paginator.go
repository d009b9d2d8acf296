package feed

import (
	"strconv"

	"gorm.io/gorm"

	"github.com/marke1-web/hw05-final/internal/post"
)

// PostsPerPage is fixed; callers cannot pick their own page size.
const PostsPerPage = 10

// Pagination is the navigation metadata rendered next to a page.
type Pagination struct {
	Number      int  `json:"number"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// Page is one fixed-size slice of an ordered post collection.
type Page struct {
	Posts      []post.Post
	Total      int64
	Pagination Pagination
}

// parsePage maps the raw "page" query value to a page number. Anything
// non-numeric or below 1 falls back to the first page.
func parsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// pageCount never returns 0: an empty collection still has one page.
func pageCount(total int64) int {
	n := int((total + PostsPerPage - 1) / PostsPerPage)
	if n == 0 {
		n = 1
	}
	return n
}

// clampPage pulls an out-of-range request back to the nearest valid page.
func clampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

func paginationFor(page, totalPages int) Pagination {
	return Pagination{
		Number:      page,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}

// Paginate turns an already-filtered post query into the requested
// page. Ordering is always newest first; equal timestamps fall back to
// the insertion order so pages stay stable between requests.
func Paginate(query *gorm.DB, rawPage string) (*Page, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	totalPages := pageCount(total)
	page := clampPage(parsePage(rawPage), totalPages)

	var posts []post.Post
	err := query.Session(&gorm.Session{}).
		Order("pub_date DESC, id DESC").
		Offset((page - 1) * PostsPerPage).
		Limit(PostsPerPage).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []post.Post{}
	}

	return &Page{
		Posts:      posts,
		Total:      total,
		Pagination: paginationFor(page, totalPages),
	}, nil
}

// EmptyPage is what a view with no posts at all renders: one page,
// nothing on it.
func EmptyPage() *Page {
	return &Page{
		Posts:      []post.Post{},
		Total:      0,
		Pagination: paginationFor(1, 1),
	}
}

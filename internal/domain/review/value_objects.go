package review

import "courtbook/internal/pkg/errs"

const maxCommentLength = 1000

var (
	ErrInvalidRating  = errs.New("rating must be between 1 and 5")
	ErrCommentTooLong = errs.New("comment exceeds maximum length")
)

type Rating struct {
	value int
}

func NewRating(value int) (Rating, error) {
	if value < 1 || value > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: value}, nil
}

func (r Rating) Value() int {
	return r.value
}

type Comment struct {
	value string
}

func NewComment(value string) (Comment, error) {
	if len(value) > maxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{value: value}, nil
}

func (c Comment) String() string {
	return c.value
}

func (c Comment) IsEmpty() bool {
	return c.value == ""
}

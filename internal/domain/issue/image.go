package issue

import (
	"fmt"
	"time"

	"nagarsetu/internal/shared/biztime"
)

// Image is an immutable photo attached to an issue at creation time.
type Image struct {
	id         uint
	issueID    uint
	imageURL   string
	caption    string
	uploadedAt time.Time
}

func NewImage(issueID uint, imageURL, caption string) (*Image, error) {
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if len(imageURL) == 0 {
		return nil, fmt.Errorf("image URL is required")
	}
	if len(caption) > 255 {
		return nil, fmt.Errorf("caption exceeds maximum length of 255 characters")
	}

	return &Image{
		issueID:    issueID,
		imageURL:   imageURL,
		caption:    caption,
		uploadedAt: biztime.NowUTC(),
	}, nil
}

func ReconstructImage(id, issueID uint, imageURL, caption string, uploadedAt time.Time) (*Image, error) {
	if id == 0 {
		return nil, fmt.Errorf("image ID cannot be zero")
	}
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}

	return &Image{
		id:         id,
		issueID:    issueID,
		imageURL:   imageURL,
		caption:    caption,
		uploadedAt: uploadedAt,
	}, nil
}

func (im *Image) ID() uint {
	return im.id
}

func (im *Image) IssueID() uint {
	return im.issueID
}

func (im *Image) ImageURL() string {
	return im.imageURL
}

func (im *Image) Caption() string {
	return im.caption
}

func (im *Image) UploadedAt() time.Time {
	return im.uploadedAt
}

func (im *Image) SetID(id uint) error {
	if im.id != 0 {
		return fmt.Errorf("image ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("image ID cannot be zero")
	}
	im.id = id
	return nil
}

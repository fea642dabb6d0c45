package jellyfin

import (
	"fmt"
	"net/url"
)

// ImageType represents different image types.
type ImageType string

const (
	ImagePrimary  ImageType = "Primary"
	ImageBackdrop ImageType = "Backdrop"
	ImageThumb    ImageType = "Thumb"
)

// GetImageURL constructs a URL for an item's image.
func (c *Client) GetImageURL(itemID string, imgType ImageType, maxWidth, maxHeight int) string {
	u := fmt.Sprintf("%s/Items/%s/Images/%s", c.serverURL, url.PathEscape(itemID), string(imgType))
	params := url.Values{}
	if maxWidth > 0 {
		params.Set("maxWidth", fmt.Sprintf("%d", maxWidth))
	}
	if maxHeight > 0 {
		params.Set("maxHeight", fmt.Sprintf("%d", maxHeight))
	}
	params.Set("quality", "90")
	return u + "?" + params.Encode()
}

// GetPosterURL returns the primary image URL sized for a slide.
func (c *Client) GetPosterURL(itemID string) string {
	return c.GetImageURL(itemID, ImagePrimary, 0, 900)
}

// GetBackdropURL returns the backdrop image URL sized for a slide.
func (c *Client) GetBackdropURL(itemID string) string {
	return c.GetImageURL(itemID, ImageBackdrop, 1440, 0)
}

// SlideArtURL picks the artwork a featured slide shows.
func (c *Client) SlideArtURL(item MediaItem, primary bool) string {
	if !primary && len(item.BackdropTags) > 0 {
		return c.GetBackdropURL(item.ID)
	}
	return c.GetPosterURL(item.ID)
}

package jellyfin

import (
	"fmt"

	jellyfin "github.com/sj14/jellyfin-go/api"
)

// MediaItem is a simplified representation of a Jellyfin item.
type MediaItem struct {
	ID              string
	Name            string
	Type            string // Movie, Series, Episode, ...
	Year            int
	Overview        string
	Tagline         string
	RuntimeTicks    int64
	CommunityRating float32
	// PrimaryAspect is the primary image's width/height, 0 if unknown.
	PrimaryAspect float64
	ImageTags     map[string]string
	BackdropTags  []string
}

// HasArtwork reports whether the item has something to show on a slide.
func (m MediaItem) HasArtwork(primary bool) bool {
	if !primary && len(m.BackdropTags) > 0 {
		return true
	}
	_, ok := m.ImageTags[string(ImagePrimary)]
	return ok
}

var slideFields = []jellyfin.ItemFields{
	jellyfin.ITEMFIELDS_OVERVIEW,
	jellyfin.ITEMFIELDS_TAGLINES,
	jellyfin.ITEMFIELDS_PRIMARY_IMAGE_ASPECT_RATIO,
}

const defaultFeaturedLimit = 12

// GetFeatured returns the newest movies and series, for the home carousel.
// Items without usable artwork are dropped.
func (c *Client) GetFeatured(limit int, primary bool) ([]MediaItem, error) {
	if limit <= 0 {
		limit = defaultFeaturedLimit
	}
	ctx, cancel := c.reqCtx()
	defer cancel()
	result, _, err := c.api.ItemsAPI.GetItems(ctx).
		UserId(c.userID).
		Recursive(true).
		Limit(int32(limit * 2)).
		Fields(slideFields).
		EnableImageTypes([]jellyfin.ImageType{jellyfin.IMAGETYPE_PRIMARY, jellyfin.IMAGETYPE_BACKDROP}).
		ImageTypeLimit(1).
		IncludeItemTypes([]jellyfin.BaseItemKind{
			jellyfin.BASEITEMKIND_MOVIE,
			jellyfin.BASEITEMKIND_SERIES,
		}).
		SortBy([]jellyfin.ItemSortBy{jellyfin.ITEMSORTBY_DATE_CREATED}).
		SortOrder([]jellyfin.SortOrder{jellyfin.SORTORDER_DESCENDING}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("get featured: %w", err)
	}
	return featuredSubset(convertItems(result.Items), limit, primary), nil
}

// featuredSubset keeps up to limit items that have artwork.
func featuredSubset(items []MediaItem, limit int, primary bool) []MediaItem {
	out := make([]MediaItem, 0, limit)
	for _, it := range items {
		if len(out) == limit {
			break
		}
		if it.HasArtwork(primary) {
			out = append(out, it)
		}
	}
	return out
}

func convertItems(items []jellyfin.BaseItemDto) []MediaItem {
	result := make([]MediaItem, 0, len(items))
	for i := range items {
		result = append(result, convertBaseItemDto(&items[i]))
	}
	return result
}

func convertBaseItemDto(item *jellyfin.BaseItemDto) MediaItem {
	mi := MediaItem{}
	if item.Id != nil {
		mi.ID = *item.Id
	}
	mi.Name = item.GetName()
	if item.Type != nil {
		mi.Type = string(*item.Type)
	}
	mi.Year = int(item.GetProductionYear())
	mi.Overview = item.GetOverview()
	if tl := item.GetTaglines(); len(tl) > 0 {
		mi.Tagline = tl[0]
	}
	mi.RuntimeTicks = item.GetRunTimeTicks()
	mi.CommunityRating = item.GetCommunityRating()
	mi.PrimaryAspect = item.GetPrimaryImageAspectRatio()

	if len(item.ImageTags) > 0 {
		mi.ImageTags = make(map[string]string, len(item.ImageTags))
		for k, v := range item.ImageTags {
			mi.ImageTags[k] = v
		}
	}
	mi.BackdropTags = item.BackdropImageTags
	return mi
}

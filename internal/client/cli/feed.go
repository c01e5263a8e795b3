package cli

import (
	"context"
	"fmt"
)

// Feed shows the discover feed: every available media file.
func (a *App) Feed(ctx context.Context) error {
	media, err := a.feed.Discover(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%d media files\n", len(media))
	printMedia(a.out, media)
	return nil
}

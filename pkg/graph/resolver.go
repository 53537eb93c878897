package graph

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"github.com/scratchdata/linkfeed/pkg/storage/database"
	"github.com/scratchdata/linkfeed/pkg/storage/database/models"
)

// Resolver is the root of the Query and Mutation types.
type Resolver struct {
	db database.Database
}

func NewResolver(db database.Database) *Resolver {
	return &Resolver{db: db}
}

func (r *Resolver) Feed(ctx context.Context) ([]*LinkResolver, error) {
	links, err := r.db.ListLinks(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Unable to list links")
		return nil, err
	}

	rc := make([]*LinkResolver, len(links))
	for i := range links {
		rc[i] = &LinkResolver{link: links[i]}
	}
	return rc, nil
}

type PostArgs struct {
	Description string
	URL         string
}

// Post appends a link. Both arguments are non-null in the schema, so the
// engine rejects requests missing either before this runs.
func (r *Resolver) Post(ctx context.Context, args PostArgs) (*LinkResolver, error) {
	link, err := r.db.AppendLink(ctx, args.Description, args.URL)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("url", args.URL).Msg("Unable to append link")
		return nil, err
	}

	log.Ctx(ctx).Debug().Int64("id", link.ID).Str("url", link.URL).Msg("Posted link")
	return &LinkResolver{link: link}, nil
}

type LinkResolver struct {
	link models.Link
}

var ErrIDOutOfRange = errors.New("link id does not fit in Int")

// ID fails rather than wrap when a database sequence has passed the
// 32-bit range of GraphQL Int.
func (l *LinkResolver) ID() (int32, error) {
	if l.link.ID > math.MaxInt32 || l.link.ID < math.MinInt32 {
		return 0, fmt.Errorf("%w: %d", ErrIDOutOfRange, l.link.ID)
	}
	return int32(l.link.ID), nil
}

func (l *LinkResolver) Description() string {
	return l.link.Description
}

func (l *LinkResolver) URL() string {
	return l.link.URL
}

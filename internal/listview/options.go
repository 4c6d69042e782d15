package listview

import (
	"fmt"
	"github.com/robinovitch61/vl/internal/constants"
	"github.com/robinovitch61/vl/internal/invalidation"
)

// ListTemplate renders the skeleton of the list from the model. The result must contain a TopFiller line directly
// followed by a BottomFiller line. Lines above them are a fixed header, lines below them a fixed footer
type ListTemplate func(model any) string

// ItemTemplate renders one item. The result must not be padded with blank lines, they would count toward the item's
// height
type ItemTemplate[T any] func(item T) string

type field uint8

const (
	fieldModel field = 1 << iota
	fieldListTemplate
	fieldEvents
	fieldItems
	fieldItemTemplate
	fieldDefaultItemHeight
)

// options is the full option set of a list view. set records which fields the options applied to it touched
type options[T any] struct {
	model             any
	listTemplate      ListTemplate
	events            map[string]Handler[T]
	delegates         []delegate[T]
	subscriptions     []subscription[T]
	items             []T
	itemTemplate      ItemTemplate[T]
	defaultItemHeight int

	set field
}

func defaultOptions[T any]() options[T] {
	return options[T]{
		listTemplate:      DefaultListTemplate,
		itemTemplate:      DefaultItemTemplate[T],
		defaultItemHeight: constants.DefaultItemHeight,
	}
}

// invalidation returns what a redraw has to apply for the fields in set
func (o options[T]) invalidation() invalidation.Flag {
	if o.set&(fieldModel|fieldListTemplate) != 0 {
		return invalidation.All
	}
	var mask invalidation.Flag
	if o.set&(fieldItems|fieldItemTemplate|fieldDefaultItemHeight) != 0 {
		mask |= invalidation.Items
	}
	if o.set&fieldEvents != 0 {
		mask |= invalidation.Events
	}
	return mask
}

// Option sets one list view option. Options are validated when passed to Set
type Option[T any] func(*options[T]) error

// WithModel sets the model the list template renders
func WithModel[T any](model any) Option[T] {
	return func(o *options[T]) error {
		o.model = model
		o.set |= fieldModel
		return nil
	}
}

func WithListTemplate[T any](tmpl ListTemplate) Option[T] {
	return func(o *options[T]) error {
		if tmpl == nil {
			return fmt.Errorf("%w: nil list template", ErrInvalidOption)
		}
		o.listTemplate = tmpl
		o.set |= fieldListTemplate
		return nil
	}
}

// WithEvents replaces the event handlers. Keys are "event selector" pairs, see Handler
func WithEvents[T any](events map[string]Handler[T]) Option[T] {
	return func(o *options[T]) error {
		delegates, subscriptions, err := parseEvents(events)
		if err != nil {
			return err
		}
		o.events = events
		o.delegates = delegates
		o.subscriptions = subscriptions
		o.set |= fieldEvents
		return nil
	}
}

// WithItems replaces the items
func WithItems[T any](items []T) Option[T] {
	return func(o *options[T]) error {
		o.items = items
		o.set |= fieldItems
		return nil
	}
}

func WithItemTemplate[T any](tmpl ItemTemplate[T]) Option[T] {
	return func(o *options[T]) error {
		if tmpl == nil {
			return fmt.Errorf("%w: nil item template", ErrInvalidOption)
		}
		o.itemTemplate = tmpl
		o.set |= fieldItemTemplate
		return nil
	}
}

// WithDefaultItemHeight sets the height of an item in rows. When items are measured it is the estimate for items
// that have not been rendered yet
func WithDefaultItemHeight[T any](rows int) Option[T] {
	return func(o *options[T]) error {
		if rows <= 0 {
			return fmt.Errorf("%w: default item height must be positive, got %d", ErrInvalidOption, rows)
		}
		o.defaultItemHeight = rows
		o.set |= fieldDefaultItemHeight
		return nil
	}
}

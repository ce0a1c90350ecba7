package classifier

import (
	"fmt"
	"sort"

	"github.com/spikeband/spikeband/pkg/internal/types"
	"github.com/spikeband/spikeband/pkg/internal/utils"
	"github.com/spikeband/spikeband/pkg/logschema"
)

// Partition splits spikes into the subset falling within the configured window
// after their nearest preceding event (tagged) and the rest (spontaneous).
//
// Each spike is classified independently by a binary search for the latest
// event at or before it; a spike preceding every event is spontaneous, and a
// spike exactly window seconds after its event is spontaneous (the comparison
// is strict). The partition is stable: relative spike order is preserved within
// each subset, and every input timestamp lands in exactly one subset.
//
// The returned error is always nil unless the classifier was built with
// WithSortedCheck and the events are out of order; without the check, unsorted
// events silently produce an incorrect partition.
func (c *Classifier) Partition(events types.EventSequence, spikes types.SpikeSequence) (types.SpikeSequence, types.SpikeSequence, error) {
	if c.sortedCheck && !strictlyAscending(events) {
		c.NotifyLoggers(types.ErrorLevel, "partition rejected unsorted events",
			logschema.FieldComponent, c.componentMetadata.ID, logschema.FieldEvent, "Partition", "events", len(events))
		return nil, nil, fmt.Errorf("partition: %w", ErrUnsortedEvents)
	}

	tagged := utils.Filter(spikes, func(t float64) bool { return c.IsTagged(events, t) })
	spontaneous := utils.Filter(spikes, func(t float64) bool { return !c.IsTagged(events, t) })

	c.NotifyLoggers(types.DebugLevel, "partition complete",
		logschema.FieldComponent, c.componentMetadata.ID, logschema.FieldEvent, "Partition",
		"spikes", len(spikes), "tagged", len(tagged), "spontaneous", len(spontaneous))
	c.notifyClassifyComplete(len(tagged), len(spontaneous))

	return tagged, spontaneous, nil
}

// IsTagged reports whether a single spike timestamp falls within the window
// after its nearest preceding event. Events must be sorted ascending.
func (c *Classifier) IsTagged(events types.EventSequence, spike float64) bool {
	// Index of the latest event at or before the spike.
	idx := sort.Search(len(events), func(i int) bool { return events[i] > spike }) - 1
	if idx < 0 {
		return false
	}
	return spike-events[idx] < c.window
}

// GetWindow returns the tagging window in seconds.
func (c *Classifier) GetWindow() float64 {
	return c.window
}

// strictlyAscending reports whether every event is strictly greater than its
// predecessor. Duplicate timestamps fail the check.
func strictlyAscending(events types.EventSequence) bool {
	for i := 1; i < len(events); i++ {
		if events[i] <= events[i-1] {
			return false
		}
	}
	return true
}

package job

import "fmt"

// Collection gathers jobs in display order while sacct records stream in.
// Requested job IDs are registered up front; queries without explicit IDs
// (per-user or time-window reports) accept every job sacct returns instead.
type Collection struct {
	order     []string
	jobs      map[string]*Job
	acceptAll bool
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{jobs: make(map[string]*Job)}
}

// SetJobs registers the requested job IDs in their requested order.
func (c *Collection) SetJobs(ids []string) {
	for _, id := range ids {
		c.add(id)
	}
}

// AcceptAll makes ProcessEntry create jobs for IDs that were never
// requested. Records then arrive in sacct's own ordering.
func (c *Collection) AcceptAll() {
	c.acceptAll = true
}

// ProcessEntry routes one sacct record to its job. Records for array
// elements of a requested array root create the element job on first sight;
// anything else unknown is dropped unless AcceptAll was called.
func (c *Collection) ProcessEntry(entry map[string]string) error {
	id := entry["JobID"]
	if id == "" {
		return fmt.Errorf("entry has no JobID: %v", entry)
	}
	base := baseID(id)
	j, ok := c.jobs[base]
	if !ok {
		switch {
		case c.acceptAll:
			j = c.add(base)
		case c.jobs[arrayRoot(base)] != nil && arrayRoot(base) != base:
			j = c.add(base)
		default:
			return nil
		}
	}
	j.Update(entry)
	return nil
}

// Jobs returns, in order, every job that reached a lifecycle state. IDs the
// user asked about that sacct never reported stay out of the table.
func (c *Collection) Jobs() []*Job {
	out := make([]*Job, 0, len(c.order))
	for _, id := range c.order {
		if j := c.jobs[id]; j.HasState() {
			out = append(out, j)
		}
	}
	return out
}

func (c *Collection) add(id string) *Job {
	if j, ok := c.jobs[id]; ok {
		return j
	}
	j := New(id)
	c.jobs[id] = j
	c.order = append(c.order, id)
	return j
}

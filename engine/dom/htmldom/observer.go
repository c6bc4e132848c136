package htmldom

import (
	"github.com/npillmayer/anchorlayout/engine/dom"
	"golang.org/x/net/html"
)

// observer collects mutation records until its batch is delivered.
type observer struct {
	cb        dom.Callback
	pending   []dom.Mutation
	queued    bool
	cancelled bool
}

func (o *observer) deliver() {
	o.queued = false
	batch := o.pending
	o.pending = nil
	if o.cancelled || len(batch) == 0 {
		return
	}
	o.cb(batch)
}

// Observe is part of interface dom.Document. Mutations of n and of all
// elements below n are delivered to cb, batched per run-loop turn.
func (doc *Document) Observe(n dom.Node, cb dom.Callback) (cancel func()) {
	o := &observer{cb: cb}
	key := n.Key()
	doc.observers[key] = append(doc.observers[key], o)
	return func() {
		o.cancelled = true
		obs := doc.observers[key]
		for i, x := range obs {
			if x == o {
				doc.observers[key] = append(obs[:i], obs[i+1:]...)
				break
			}
		}
		if len(doc.observers[key]) == 0 {
			delete(doc.observers, key)
		}
	}
}

// record notifies observers of the mutation target and of its ancestors.
func (doc *Document) record(m dom.Mutation) {
	tracer().Debugf("mutation %s of %s %s", m.Kind, m.Target.Name(), m.AttributeName)
	if m.Target.IsViewport() {
		doc.enqueue(m.Target.Key(), m)
		return
	}
	t, ok := m.Target.(*Node)
	if !ok {
		return
	}
	for h := t.h; h != nil && h.Type == html.ElementNode; h = h.Parent {
		if n, ok := doc.nodes[h]; ok {
			doc.enqueue(n.key, m)
		}
	}
}

func (doc *Document) enqueue(key dom.Key, m dom.Mutation) {
	for _, o := range doc.observers[key] {
		o.pending = append(o.pending, m)
		if !o.queued {
			o.queued = true
			doc.loop.Queue(o.deliver)
		}
	}
}

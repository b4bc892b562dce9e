// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

// Package graph compiles a timeline into a DAG of node.Node values
// rooted at the image visible at a given instant: a background Fill,
// composited with each video track's active item or transition in
// turn, with stack, track, and item time warps and effects wired in
// along the way.
package graph

import (
	"fmt"
	"log/slog"

	"toucango/host"
	"toucango/imageio"
	"toucango/node"
	"toucango/opentime"
	"toucango/otio"
	"toucango/read"
	"toucango/registry"
	"toucango/wrapper"
)

// backgroundColor is the opaque black the root Fill is seeded with
// before any track is composited over it.
var backgroundColor = [4]float64{0, 0, 0, 1}

// Compiler builds an image graph from an opened timeline for a given
// instant, caching Read nodes across calls by media identity.
type Compiler struct {
	wrapper *wrapper.TimelineWrapper
	cache   *read.Cache
	logger  *slog.Logger

	probed    bool
	imageSize imageio.ImageSpec
}

// NewCompiler creates a Compiler over an already-opened timeline.
func NewCompiler(w *wrapper.TimelineWrapper) *Compiler {
	return &Compiler{
		wrapper: w,
		cache:   read.NewCache(64),
		logger:  slog.Default(),
	}
}

// timeOffsetSetter is satisfied by every concrete node.Node (they all
// embed node.Base), letting graph set time_offset without widening the
// node.Node interface itself.
type timeOffsetSetter interface {
	SetTimeOffset(opentime.RationalTime)
}

// Exec compiles the timeline at instant t and returns the root node of
// the resulting graph. Callers drive the graph by calling
// root.SetTime and root.Exec themselves.
func (c *Compiler) Exec(h *host.Host, t opentime.RationalTime) (node.Node, error) {
	tl := c.wrapper.Timeline()
	if tl == nil {
		return nil, fmt.Errorf("graph: wrapper has no timeline")
	}

	imageSize := c.probeImageSize(h)
	var root node.Node = node.NewFill("background", imageSize.Width, imageSize.Height, backgroundColor)

	stack := tl.Tracks()
	if stack == nil {
		return root, nil
	}

	stackWarps := filterWarpEffects(stack.Effects())
	stackDuration, err := stack.Duration()
	if err != nil {
		stackDuration = opentime.NewRationalTime(0, t.Rate())
	}

	timelineStart := opentime.NewRationalTime(0, stackDuration.Rate())
	if gst := tl.GlobalStartTime(); gst != nil {
		timelineStart = *gst
	}
	tRelative := t.Sub(timelineStart)
	tAnalytic := applyWarpChainAnalytic(tRelative, stackWarps, stackDuration)

	for _, child := range stack.Children() {
		track, ok := child.(*otio.Track)
		if !ok || track.Kind() != otio.TrackKindVideo || !track.Enabled() {
			continue
		}

		trackWarps := filterWarpEffects(track.Effects())
		trackDuration, err := track.Duration()
		if err != nil {
			trackDuration = stackDuration
		}
		t2 := applyWarpChainAnalytic(tAnalytic, trackWarps, trackDuration)

		content, err := c.buildTrackContent(track, t2, imageSize, h)
		if err != nil {
			return nil, err
		}
		if content == nil {
			continue
		}

		content, err = c.applyEffectChain(content, filterNonWarpEffects(track.Effects()), h)
		if err != nil {
			return nil, err
		}

		withTrackWarp := buildWarpChain(track.Name()+"-track-warp", content, trackWarps, trackDuration)
		withStackWarp := buildWarpChain(track.Name()+"-stack-warp", withTrackWarp, stackWarps, stackDuration)

		root = node.NewComp(track.Name()+"-over-root", withStackWarp, root, true, false)
	}

	root, err = c.applyEffectChain(root, filterNonWarpEffects(stack.Effects()), h)
	if err != nil {
		return nil, err
	}
	if setter, ok := root.(timeOffsetSetter); ok {
		setter.SetTimeOffset(timelineStart)
	}

	return root, nil
}

// buildTrackContent picks the item or transition active at t2 within
// track and builds the node graph for it, or returns (nil, nil) when
// nothing is active (an empty track contributes nothing).
func (c *Compiler) buildTrackContent(track *otio.Track, t2 opentime.RationalTime, imageSize imageio.ImageSpec, h *host.Host) (node.Node, error) {
	active := track.ItemAt(t2)
	if active == nil {
		return nil, nil
	}

	itemNode, err := c.buildItemNode(active, imageSize, h)
	if err != nil {
		return nil, err
	}

	before, after := track.NeighboringTransitions(active)

	if before != nil {
		if wrapped, err := c.wrapTransition(track, before, active, true, t2, itemNode, imageSize, h); err != nil {
			return nil, err
		} else if wrapped != nil {
			itemNode = wrapped
		}
	}
	if after != nil {
		if wrapped, err := c.wrapTransition(track, after, active, false, t2, itemNode, imageSize, h); err != nil {
			return nil, err
		} else if wrapped != nil {
			return wrapped, nil
		}
	}

	return itemNode, nil
}

// wrapTransition checks whether transition's independently-computed
// active range contains t2 (otio.TrimmedRangeInParent reports a
// zero-width range for transitions, so it cannot be used directly),
// and if so wraps itemNode with its neighbor across the cut. incoming
// is true for a transition preceding active, false for one following it.
func (c *Compiler) wrapTransition(track *otio.Track, transition *otio.Transition, active otio.Composable, incoming bool, t2 opentime.RationalTime, itemNode node.Node, imageSize imageio.ImageSpec, h *host.Host) (node.Node, error) {
	boundary, err := otio.TrimmedRangeInParent(transition)
	if err != nil {
		return nil, nil
	}
	start := boundary.StartTime().Sub(transition.InOffset())
	duration, _ := transition.Duration()
	activeRange := opentime.NewTimeRange(start, duration)
	if !activeRange.Contains(t2) {
		return nil, nil
	}

	delta := -1
	if !incoming {
		delta = 1
	}
	neighbor := track.NeighborItem(active, delta)
	if neighbor == nil {
		return nil, nil
	}
	neighborNode, err := c.buildItemNode(neighbor, imageSize, h)
	if err != nil {
		return nil, err
	}

	rate := t2.Rate()
	value := t2.Sub(start).ValueRescaledTo(rate) / duration.ValueRescaledTo(rate)

	var from, to node.Node
	if incoming {
		from, to = neighborNode, itemNode
	} else {
		from, to = itemNode, neighborNode
	}

	identifier := c.resolveIdentifier(string(transition.TransitionType()))
	if h != nil && h.HasPlugin(identifier) {
		params := map[string]any{"value": value}
		return h.CreateNode(identifier, host.ContextTransition, []node.Node{from, to}, params)
	}
	return node.NewDissolve(transition.Name(), from, to, value), nil
}

// buildItemNode builds a self-contained node for a track's Item: a raw
// leaf (Clip/Gap), wrapped by the item's own time-warp effects (which
// derive the media-local time) and then its remaining image effects,
// with time_offset set so the node can be fed the track's t2 directly.
func (c *Compiler) buildItemNode(composable otio.Composable, imageSize imageio.ImageSpec, h *host.Host) (node.Node, error) {
	item, ok := composable.(otio.Item)
	if !ok {
		return nil, fmt.Errorf("graph: %T is not an Item", composable)
	}

	trimmed, err := otio.TrimmedRangeInParent(composable)
	if err != nil {
		return nil, fmt.Errorf("graph: trimmed range of %s: %w", nameOf(composable), err)
	}
	sourceStart := opentime.RationalTime{}
	if sr := item.SourceRange(); sr != nil {
		sourceStart = sr.StartTime()
	}
	timeOffset := trimmed.StartTime().Sub(sourceStart)
	itemDuration := trimmed.Duration()

	var raw node.Node
	switch v := composable.(type) {
	case *otio.Clip:
		raw, err = c.buildClipNode(v, imageSize, h)
		if err != nil {
			return nil, err
		}
	case *otio.Gap:
		raw = node.NewFill(v.Name(), imageSize.Width, imageSize.Height, backgroundColor)
	default:
		return nil, fmt.Errorf("graph: unsupported item type %T", composable)
	}

	effects := item.Effects()
	timed := buildWarpChain(nameOf(composable)+"-warp", raw, filterWarpEffects(effects), itemDuration)

	head, err := c.applyEffectChain(timed, filterNonWarpEffects(effects), h)
	if err != nil {
		return nil, err
	}
	if setter, ok := head.(timeOffsetSetter); ok {
		setter.SetTimeOffset(timeOffset)
	}
	return head, nil
}

// buildClipNode constructs the leaf node for a Clip's media reference:
// a cached Read node for an external or sequence reference, a
// host-built node for a generator, or a Fill for a missing reference.
func (c *Compiler) buildClipNode(clip *otio.Clip, imageSize imageio.ImageSpec, h *host.Host) (node.Node, error) {
	ref := clip.MediaReference()

	if gen, ok := ref.(*otio.GeneratorReference); ok {
		return c.buildGeneratorNode(gen, imageSize, h)
	}
	if _, ok := ref.(*otio.MissingReference); ok {
		c.logger.Warn("graph: clip has a missing media reference, filling", "clip", clip.Name())
		return node.NewFill(clip.Name(), imageSize.Width, imageSize.Height, backgroundColor), nil
	}

	identity := mediaIdentity(ref)
	readNode, err := c.cache.GetOrCreate(identity, func() (read.Node, error) {
		return c.wrapper.MakeReadNode(ref)
	})
	if err != nil {
		return nil, fmt.Errorf("graph: building read node for %s: %w", clip.Name(), err)
	}

	// No embedded timecode: compensate for a Read node whose own frame
	// numbering doesn't start where the clip's available_range says it
	// should, by shifting the incoming media-local time accordingly.
	available, err := clip.AvailableRange()
	if err == nil {
		readRange := readNode.TimeRange()
		if !available.StartTime().Equal(readRange.StartTime()) {
			if setter, ok := readNode.(timeOffsetSetter); ok {
				setter.SetTimeOffset(available.StartTime())
			}
		}
	}

	return readNode, nil
}

// buildGeneratorNode asks the host for a node built from the
// generator's kind, passing its full parameter dictionary as
// metadata, per ImageGraph.cpp's generator handling. With no matching
// plugin loaded it falls back to an opaque Fill so a timeline still
// previews.
func (c *Compiler) buildGeneratorNode(gen *otio.GeneratorReference, imageSize imageio.ImageSpec, h *host.Host) (node.Node, error) {
	identifier := c.resolveIdentifier(gen.GeneratorKind())
	if h != nil && h.HasPlugin(identifier) {
		params := map[string]any(gen.Parameters())
		return h.CreateNode(identifier, host.ContextGenerator, nil, params)
	}
	c.logger.Warn("graph: no plugin for generator, filling", "generator_kind", gen.GeneratorKind())
	return node.NewFill(gen.Name(), imageSize.Width, imageSize.Height, backgroundColor), nil
}

// applyEffectChain wraps input with a host-built node per effect, in
// listed order (effects[0] nearest the source). A missing plugin is
// logged and skipped rather than failing the whole compile, so a
// timeline previews sensibly before every effect plugin is installed.
func (c *Compiler) applyEffectChain(input node.Node, effects []otio.Effect, h *host.Host) (node.Node, error) {
	head := input
	for _, effect := range effects {
		if h == nil {
			continue
		}
		identifier := c.resolveIdentifier(effect.EffectName())
		if !h.HasPlugin(identifier) {
			c.logger.Warn("graph: no plugin for effect, passing through", "effect", effect.EffectName())
			continue
		}
		params := map[string]any{}
		if md, ok := any(effect).(interface{ Metadata() otio.AnyDictionary }); ok {
			for k, v := range md.Metadata() {
				params[k] = v
			}
		}
		built, err := h.CreateNode(identifier, host.ContextFilter, []node.Node{head}, params)
		if err != nil {
			return nil, fmt.Errorf("graph: creating effect node %q: %w", identifier, err)
		}
		head = built
	}
	return head, nil
}

// resolveIdentifier follows the registry's explicit-entry-else-convention
// rule, the same lookup ImageGraph.cpp performs before calling
// create_instance.
func (c *Compiler) resolveIdentifier(schemaName string) string {
	if entry, err := registry.Lookup(schemaName); err == nil {
		return entry.Identifier
	}
	return registry.Identifier(schemaName)
}

// probeImageSize walks the timeline's video tracks for the first clip
// whose media reference yields a defined ImageSpec, and caches the
// result for the lifetime of the Compiler (the same wrapper never
// changes size mid-session).
func (c *Compiler) probeImageSize(h *host.Host) imageio.ImageSpec {
	if c.probed {
		return c.imageSize
	}
	c.probed = true

	tl := c.wrapper.Timeline()
	if tl != nil {
		for _, track := range tl.VideoTracks() {
			for _, child := range track.Children() {
				clip, ok := child.(*otio.Clip)
				if !ok {
					continue
				}
				n, err := c.buildClipNode(clip, imageio.ImageSpec{}, h)
				if err != nil {
					continue
				}
				if r, ok := n.(read.Node); ok {
					n.SetTime(r.TimeRange().StartTime())
				}
				buf, err := n.Exec()
				if err != nil || buf == nil {
					continue
				}
				if buf.Spec.IsValid() {
					c.imageSize = buf.Spec
					return c.imageSize
				}
			}
		}
	}
	c.imageSize = imageio.ImageSpec{}
	return c.imageSize
}

// mediaIdentity derives a stable cache key for a media reference so
// clips sharing the same underlying media reuse one Read node.
func mediaIdentity(ref otio.MediaReference) string {
	switch r := ref.(type) {
	case *otio.ExternalReference:
		return "external:" + r.TargetURL()
	case *otio.ImageSequenceReference:
		return "sequence:" + r.TargetURLBase() + "/" + r.NamePrefix() + "*" + r.NameSuffix()
	default:
		return fmt.Sprintf("other:%p", ref)
	}
}

// nameOf extracts a Composable's debug name without widening the
// Composable interface with a Name method it doesn't declare.
func nameOf(c otio.Composable) string {
	if n, ok := c.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "item"
}

// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package otio

import (
	"encoding/json"
	"fmt"

	"toucango/opentime"
)

// MissingFramePolicy controls how a sequence reader should behave when
// asked for a frame number outside the sequence's declared range.
type MissingFramePolicy string

const (
	// MissingFramePolicyError fails the read.
	MissingFramePolicyError MissingFramePolicy = "error"
	// MissingFramePolicyHold repeats the nearest in-range frame.
	MissingFramePolicyHold MissingFramePolicy = "hold"
	// MissingFramePolicyBlack substitutes a black frame.
	MissingFramePolicyBlack MissingFramePolicy = "black"
)

// ImageSequenceReferenceSchema is the schema for ImageSequenceReference.
var ImageSequenceReferenceSchema = Schema{Name: "ImageSequenceReference", Version: 1}

// ImageSequenceReference is a MediaReference describing a numbered
// sequence of single-frame image files, e.g. "shot_0100.exr".
type ImageSequenceReference struct {
	MediaReferenceBase
	targetURLBase      string
	namePrefix         string
	nameSuffix         string
	startFrame         int
	frameStep          int
	rate               float64
	frameZeroPadding   int
	missingFramePolicy MissingFramePolicy
}

// NewImageSequenceReference creates a new ImageSequenceReference.
func NewImageSequenceReference(
	name string,
	targetURLBase string,
	namePrefix string,
	nameSuffix string,
	startFrame int,
	frameStep int,
	rate float64,
	frameZeroPadding int,
	missingFramePolicy MissingFramePolicy,
	availableRange *opentime.TimeRange,
	metadata AnyDictionary,
	availableImageBounds *Box2d,
) *ImageSequenceReference {
	if frameStep == 0 {
		frameStep = 1
	}
	if rate == 0 {
		rate = 24.0
	}
	if missingFramePolicy == "" {
		missingFramePolicy = MissingFramePolicyError
	}
	return &ImageSequenceReference{
		MediaReferenceBase: NewMediaReferenceBase(name, availableRange, metadata, availableImageBounds),
		targetURLBase:      targetURLBase,
		namePrefix:         namePrefix,
		nameSuffix:         nameSuffix,
		startFrame:         startFrame,
		frameStep:          frameStep,
		rate:               rate,
		frameZeroPadding:   frameZeroPadding,
		missingFramePolicy: missingFramePolicy,
	}
}

func (r *ImageSequenceReference) TargetURLBase() string          { return r.targetURLBase }
func (r *ImageSequenceReference) NamePrefix() string              { return r.namePrefix }
func (r *ImageSequenceReference) NameSuffix() string              { return r.nameSuffix }
func (r *ImageSequenceReference) StartFrame() int                 { return r.startFrame }
func (r *ImageSequenceReference) FrameStep() int                  { return r.frameStep }
func (r *ImageSequenceReference) Rate() float64                   { return r.rate }
func (r *ImageSequenceReference) FrameZeroPadding() int           { return r.frameZeroPadding }
func (r *ImageSequenceReference) MissingFramePolicy() MissingFramePolicy { return r.missingFramePolicy }

func (r *ImageSequenceReference) SetTargetURLBase(v string)              { r.targetURLBase = v }
func (r *ImageSequenceReference) SetNamePrefix(v string)                 { r.namePrefix = v }
func (r *ImageSequenceReference) SetNameSuffix(v string)                 { r.nameSuffix = v }
func (r *ImageSequenceReference) SetStartFrame(v int)                    { r.startFrame = v }
func (r *ImageSequenceReference) SetFrameStep(v int)                     { r.frameStep = v }
func (r *ImageSequenceReference) SetRate(v float64)                      { r.rate = v }
func (r *ImageSequenceReference) SetFrameZeroPadding(v int)              { r.frameZeroPadding = v }
func (r *ImageSequenceReference) SetMissingFramePolicy(v MissingFramePolicy) { r.missingFramePolicy = v }

// NumberOfImagesInSequence returns how many frame files the sequence
// spans, derived from the available range's duration.
func (r *ImageSequenceReference) NumberOfImagesInSequence() (int, error) {
	if r.availableRange == nil {
		return 0, ErrCannotComputeAvailableRange
	}
	count := int(r.availableRange.Duration().Value())
	if r.frameStep > 0 {
		count = (count + r.frameStep - 1) / r.frameStep
	}
	return count, nil
}

// EndFrame returns the last frame number in the sequence.
func (r *ImageSequenceReference) EndFrame() (int, error) {
	n, err := r.NumberOfImagesInSequence()
	if err != nil {
		return 0, err
	}
	return r.startFrame + (n-1)*r.frameStep, nil
}

// TargetURLForImageNumber builds the on-disk filename for the given
// frame number, e.g. "shot_0100.exr" for prefix "shot_", number 100,
// padding 4, suffix ".exr".
func (r *ImageSequenceReference) TargetURLForImageNumber(imageNumber int) string {
	return fmt.Sprintf("%s%0*d%s", r.namePrefix, r.frameZeroPadding, imageNumber, r.nameSuffix)
}

// SchemaName returns the schema name.
func (r *ImageSequenceReference) SchemaName() string { return ImageSequenceReferenceSchema.Name }

// SchemaVersion returns the schema version.
func (r *ImageSequenceReference) SchemaVersion() int { return ImageSequenceReferenceSchema.Version }

// Clone creates a deep copy.
func (r *ImageSequenceReference) Clone() SerializableObject {
	return &ImageSequenceReference{
		MediaReferenceBase: MediaReferenceBase{
			SerializableObjectWithMetadataBase: SerializableObjectWithMetadataBase{
				name:     r.name,
				metadata: CloneAnyDictionary(r.metadata),
			},
			availableRange:       cloneAvailableRange(r.availableRange),
			availableImageBounds: cloneBox2d(r.availableImageBounds),
		},
		targetURLBase:      r.targetURLBase,
		namePrefix:         r.namePrefix,
		nameSuffix:         r.nameSuffix,
		startFrame:         r.startFrame,
		frameStep:          r.frameStep,
		rate:               r.rate,
		frameZeroPadding:   r.frameZeroPadding,
		missingFramePolicy: r.missingFramePolicy,
	}
}

// IsEquivalentTo returns true if equivalent.
func (r *ImageSequenceReference) IsEquivalentTo(other SerializableObject) bool {
	otherR, ok := other.(*ImageSequenceReference)
	if !ok {
		return false
	}
	return r.name == otherR.name &&
		r.targetURLBase == otherR.targetURLBase &&
		r.namePrefix == otherR.namePrefix &&
		r.nameSuffix == otherR.nameSuffix &&
		r.startFrame == otherR.startFrame &&
		r.frameStep == otherR.frameStep &&
		r.frameZeroPadding == otherR.frameZeroPadding
}

type imageSequenceReferenceJSON struct {
	Schema               string              `json:"OTIO_SCHEMA"`
	Name                 string              `json:"name"`
	Metadata             AnyDictionary       `json:"metadata"`
	AvailableRange       *opentime.TimeRange `json:"available_range"`
	AvailableImageBounds *Box2d              `json:"available_image_bounds"`
	TargetURLBase        string              `json:"target_url_base"`
	NamePrefix           string              `json:"name_prefix"`
	NameSuffix           string              `json:"name_suffix"`
	StartFrame           int                 `json:"start_frame"`
	FrameStep            int                 `json:"frame_step"`
	Rate                 float64             `json:"rate"`
	FrameZeroPadding     int                 `json:"frame_zero_padding"`
	MissingFramePolicy   MissingFramePolicy  `json:"missing_frame_policy"`
}

// MarshalJSON implements json.Marshaler.
func (r *ImageSequenceReference) MarshalJSON() ([]byte, error) {
	return json.Marshal(&imageSequenceReferenceJSON{
		Schema:               ImageSequenceReferenceSchema.String(),
		Name:                 r.name,
		Metadata:             r.metadata,
		AvailableRange:       r.availableRange,
		AvailableImageBounds: r.availableImageBounds,
		TargetURLBase:        r.targetURLBase,
		NamePrefix:           r.namePrefix,
		NameSuffix:           r.nameSuffix,
		StartFrame:           r.startFrame,
		FrameStep:            r.frameStep,
		Rate:                 r.rate,
		FrameZeroPadding:     r.frameZeroPadding,
		MissingFramePolicy:   r.missingFramePolicy,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *ImageSequenceReference) UnmarshalJSON(data []byte) error {
	var j imageSequenceReferenceJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	r.name = j.Name
	r.metadata = j.Metadata
	if r.metadata == nil {
		r.metadata = make(AnyDictionary)
	}
	r.availableRange = j.AvailableRange
	r.availableImageBounds = j.AvailableImageBounds
	r.targetURLBase = j.TargetURLBase
	r.namePrefix = j.NamePrefix
	r.nameSuffix = j.NameSuffix
	r.startFrame = j.StartFrame
	r.frameStep = j.FrameStep
	if r.frameStep == 0 {
		r.frameStep = 1
	}
	r.rate = j.Rate
	if r.rate == 0 {
		r.rate = 24.0
	}
	r.frameZeroPadding = j.FrameZeroPadding
	r.missingFramePolicy = j.MissingFramePolicy
	if r.missingFramePolicy == "" {
		r.missingFramePolicy = MissingFramePolicyError
	}
	return nil
}

func init() {
	RegisterSchema(ImageSequenceReferenceSchema, func() SerializableObject {
		return NewImageSequenceReference("", "", "", "", 0, 1, 24.0, 0, MissingFramePolicyError, nil, nil, nil)
	})
}

// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package host

import (
	"fmt"

	"toucango/imageio"
	"toucango/property"
)

// PropertySuite is the thin adaptor to the property.Set API (spec
// §4.A) a plugin fetches by name "property". Every method forwards
// straight to the Set it's given: the suite exists so a plugin talks
// to property sets only through the host's published table, never by
// importing the property package directly.
type PropertySuite struct{}

func (PropertySuite) SetPointer(s *property.Set, key string, index int, v any) error {
	return s.SetPointer(key, index, v)
}

func (PropertySuite) GetPointer(s *property.Set, key string, index int) (any, error) {
	return s.GetPointer(key, index)
}

func (PropertySuite) SetString(s *property.Set, key string, index int, v string) error {
	return s.SetString(key, index, v)
}

func (PropertySuite) GetString(s *property.Set, key string, index int) (string, error) {
	return s.GetString(key, index)
}

func (PropertySuite) SetDouble(s *property.Set, key string, index int, v float64) error {
	return s.SetDouble(key, index, v)
}

func (PropertySuite) GetDouble(s *property.Set, key string, index int) (float64, error) {
	return s.GetDouble(key, index)
}

func (PropertySuite) SetInt(s *property.Set, key string, index int, v int) error {
	return s.SetInt(key, index, v)
}

func (PropertySuite) GetInt(s *property.Set, key string, index int) (int, error) {
	return s.GetInt(key, index)
}

// ParamHandle is the handle param_get_handle returns: the binding
// between a named parameter and one live plugin instance's value for
// it.
type ParamHandle struct {
	inst *instanceRecord
	name string
}

// ParameterSuite implements param_define/param_get_handle/
// param_get_value (spec §4.E), fetched by name "parameter".
type ParameterSuite struct{}

// ParamDefine registers name under typeTag in the plugin's aggregate
// paramSet (the *property.Set returned by ImageEffectSuite.GetParamSet)
// and returns its definition property set.
func (ParameterSuite) ParamDefine(h *Handle, paramSet *property.Set, typeTag property.Type, name string) (*property.Set, error) {
	def := property.New()
	if err := def.SetString("Name", 0, name); err != nil {
		return nil, err
	}
	if err := def.SetInt("Type", 0, int(typeTag)); err != nil {
		return nil, err
	}
	if err := paramSet.SetPointer(name, 0, def); err != nil {
		return nil, err
	}
	h.record.paramTypes[name] = typeTag
	h.record.paramDefs[name] = def
	return def, nil
}

// ParamGetHandle returns the handle of the current instance's value
// for name, plus its definition property set.
func (ParameterSuite) ParamGetHandle(h *Handle, name string) (*ParamHandle, *property.Set, error) {
	if h.instance == nil {
		return nil, nil, fmt.Errorf("host: param_get_handle called before create_instance")
	}
	def, ok := h.record.paramDefs[name]
	if !ok {
		return nil, nil, fmt.Errorf("host: no parameter defined as %q", name)
	}
	return &ParamHandle{inst: h.instance, name: name}, def, nil
}

// ParamGetValue retrieves the value bound for handle, dispatching on
// its stored dynamic type: bool, int, double, string, or a
// homogeneous sequence of double/int carried as a slice.
func (ParameterSuite) ParamGetValue(handle *ParamHandle) (any, error) {
	v, ok := handle.inst.params[handle.name]
	if !ok {
		return nil, fmt.Errorf("host: no value bound for parameter %q", handle.name)
	}
	return v, nil
}

// ClipHandle is the handle clip_get_handle returns: the binding
// between a named clip and one live plugin instance's bound image for
// that name.
type ClipHandle struct {
	inst *instanceRecord
	name string
}

// ImageEffectSuite implements get_property_set/get_param_set/
// clip_define/clip_get_handle/clip_get_image/clip_release_image (spec
// §4.E), fetched by name "image_effect".
type ImageEffectSuite struct{}

// GetPropertySet returns the plugin's top-level property set (the one
// filled by describe).
func (ImageEffectSuite) GetPropertySet(h *Handle) *property.Set {
	return h.record.props
}

// GetParamSet returns the plugin's aggregate parameter definition set,
// the param_set argument param_define registers into.
func (ImageEffectSuite) GetParamSet(h *Handle) *property.Set {
	return h.record.paramSet
}

// ClipDefine defines a clip's properties at describe_in_context time
// and returns its property set.
func (ImageEffectSuite) ClipDefine(h *Handle, name string) *property.Set {
	def := property.New()
	_ = def.SetString("Name", 0, name)
	h.record.clipDefs[name] = def
	return def
}

// ClipGetHandle returns the clip handle bound to the current instance
// for name, plus its definition property set.
func (ImageEffectSuite) ClipGetHandle(h *Handle, name string) (*ClipHandle, *property.Set, error) {
	if h.instance == nil {
		return nil, nil, fmt.Errorf("host: clip_get_handle called before create_instance")
	}
	def, ok := h.record.clipDefs[name]
	if !ok {
		return nil, nil, fmt.Errorf("host: no clip defined as %q", name)
	}
	return &ClipHandle{inst: h.instance, name: name}, def, nil
}

// componentsLabel names the pixel layout clip_get_image publishes
// under "Components", per spec §4.E.
func componentsLabel(channelCount int) string {
	switch channelCount {
	case 1:
		return "alpha"
	case 3:
		return "rgb"
	default:
		return "rgba"
	}
}

// pixelDepthLabel names the storage type clip_get_image publishes
// under "PixelDepth", per spec §4.E.
func pixelDepthLabel(c imageio.ComponentType) string {
	switch c {
	case imageio.ComponentU8:
		return "byte"
	case imageio.ComponentU16, imageio.ComponentF16:
		return "short"
	default:
		return "float"
	}
}

// ClipGetImage returns a borrowed image handle for clip: a property
// set exposing Bounds, Components, PixelDepth, RowBytes, and a Data
// pointer at the clip's bound *imageio.ImageBuf. time/region are
// accepted for signature parity with the original callback; this host
// always binds the full current-instance buffer regardless of the
// requested sub-region, since every built-in node renders one frame at
// a time.
func (ImageEffectSuite) ClipGetImage(clip *ClipHandle, time float64, region []int) (*property.Set, error) {
	buf, ok := clip.inst.clips[clip.name]
	if !ok || buf == nil {
		return nil, fmt.Errorf("host: clip %q has no bound image", clip.name)
	}
	props := property.New()
	if err := props.SetIntN("Bounds", []int{0, 0, buf.Spec.Width, buf.Spec.Height}); err != nil {
		return nil, err
	}
	if err := props.SetString("Components", 0, componentsLabel(buf.Spec.ChannelCount)); err != nil {
		return nil, err
	}
	if err := props.SetString("PixelDepth", 0, pixelDepthLabel(buf.Spec.ComponentType)); err != nil {
		return nil, err
	}
	if err := props.SetInt("RowBytes", 0, buf.Spec.RowStride); err != nil {
		return nil, err
	}
	if err := props.SetPointer("Data", 0, buf); err != nil {
		return nil, err
	}
	return props, nil
}

// ClipReleaseImage releases a borrowed image handle obtained from
// ClipGetImage. Go has no manual deallocation to perform; this clears
// the Data pointer so a stray use-after-release reads nil instead of a
// stale buffer.
func (ImageEffectSuite) ClipReleaseImage(props *property.Set) error {
	props.Reset("Data")
	return nil
}

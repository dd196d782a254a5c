package loaders

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// ObjectKind identifies a surface statement
type ObjectKind int

const (
	ObjectSphere ObjectKind = iota
	ObjectEllipsoid
	ObjectTriangle
)

// LightKind identifies a light statement
type LightKind int

const (
	LightPoint LightKind = iota // light: point or directional
	LightAttenuated
	LightSpot
	LightAttenuatedSpot
)

// ObjectStatement is one sphere, ellipsoid or f statement
type ObjectStatement struct {
	Kind ObjectKind
	Line int

	Center core.Vec3 // Sphere and ellipsoid
	Radii  core.Vec3 // A sphere has three equal radii

	Vertices [3]int  // Triangle vertex indices, 0-based
	Normals  *[3]int // Optional vertex normal indices
	UVs      *[3]int // Optional texture coordinate indices

	Material int // Index into SceneFile.Materials
	Texture  int // Index into SceneFile.Textures, -1 for none
}

// LightStatement is one light, attlight, spotlight or attspotlight statement
type LightStatement struct {
	Kind LightKind
	Line int

	Position    core.Vec3
	Directional bool      // light and attlight with w = 0
	Direction   core.Vec3 // Spotlight cone axis
	Angle       float64   // Spotlight half-angle in degrees
	Color       core.Vec3
	Attenuation lights.Attenuation
}

// SceneFile contains all parsed and validated scene file data
type SceneFile struct {
	Eye          core.Vec3
	ViewDir      core.Vec3
	UpDir        core.Vec3
	VFov         float64
	Width        int
	Height       int
	Background   core.Vec3
	AmbientIndex float64

	Materials []*material.Material
	Textures  []*material.Texture
	Vertices  []core.Vec3
	Normals   []core.Vec3 // Normalized on load
	UVs       []core.Vec2

	Objects []ObjectStatement // In file order
	Lights  []LightStatement
}

// sceneFileParser holds the state while reading a scene file
type sceneFileParser struct {
	scene   *SceneFile
	dir     string // Directory texture paths are relative to
	line    int
	seen    map[string]int // Line where each once-only keyword appeared
	texture int            // Current texture, -1 for none
}

// LoadSceneFile loads and parses a scene file. Texture paths are resolved
// relative to the scene file's directory.
func LoadSceneFile(filename string) (*SceneFile, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	scene, err := ParseSceneFile(file, filepath.Dir(filename))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return scene, nil
}

// ParseSceneFile parses scene file content. dir is used to resolve texture paths.
func ParseSceneFile(reader io.Reader, dir string) (*SceneFile, error) {
	p := &sceneFileParser{
		scene:   &SceneFile{AmbientIndex: 1},
		dir:     dir,
		seen:    make(map[string]int),
		texture: -1,
	}

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		p.line++
		if err := p.processLine(scanner.Text()); err != nil {
			return nil, fmt.Errorf("line %d: %w", p.line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	if err := p.finalize(); err != nil {
		return nil, err
	}
	return p.scene, nil
}

// processLine parses a single statement
func (p *sceneFileParser) processLine(line string) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	keyword, args := fields[0], fields[1:]

	switch keyword {
	case "eye", "viewdir", "updir", "vfov", "imsize", "bkgcolor":
		if first, ok := p.seen[keyword]; ok {
			return fmt.Errorf("%s is already defined on line %d", keyword, first)
		}
		p.seen[keyword] = p.line
		return p.parseView(keyword, args)
	case "refraction":
		return p.parseRefraction(args)
	case "parallel", "paralell":
		// Orthographic projection is not supported; the keyword is accepted
		return nil
	case "mtlcolor":
		return p.parseMaterial(args)
	case "texture":
		return p.parseTexture(args)
	case "v":
		return p.parseVertex(args)
	case "vn":
		return p.parseNormal(args)
	case "vt":
		return p.parseUV(args)
	case "sphere":
		return p.parseSphere(args)
	case "ellipsoid":
		return p.parseEllipsoid(args)
	case "f":
		return p.parseFace(args)
	case "light":
		return p.parseLight(LightPoint, args)
	case "attlight":
		return p.parseLight(LightAttenuated, args)
	case "spotlight":
		return p.parseLight(LightSpot, args)
	case "attspotlight":
		return p.parseLight(LightAttenuatedSpot, args)
	default:
		return fmt.Errorf("unknown keyword %q", keyword)
	}
}

// parseView handles the once-only viewing statements
func (p *sceneFileParser) parseView(keyword string, args []string) error {
	s := p.scene
	switch keyword {
	case "eye":
		v, err := parseVec3(keyword, args)
		s.Eye = v
		return err
	case "viewdir", "updir":
		v, err := parseVec3(keyword, args)
		if err != nil {
			return err
		}
		if v.IsZero() {
			return fmt.Errorf("%s is the zero vector", keyword)
		}
		if keyword == "viewdir" {
			s.ViewDir = v
		} else {
			s.UpDir = v
		}
		return nil
	case "vfov":
		values, err := parseFloats(keyword, args, 1)
		if err != nil {
			return err
		}
		if values[0] <= 0 || values[0] >= 180 {
			return fmt.Errorf("vfov %g is not within (0, 180) degrees", values[0])
		}
		s.VFov = values[0]
		return nil
	case "imsize":
		if len(args) != 2 {
			return fmt.Errorf("imsize expects 2 values, got %d", len(args))
		}
		width, errW := strconv.Atoi(args[0])
		height, errH := strconv.Atoi(args[1])
		if errW != nil || errH != nil {
			return fmt.Errorf("imsize expects two integers, got %q %q", args[0], args[1])
		}
		if width <= 0 || height <= 0 {
			return fmt.Errorf("imsize %dx%d has a zero or negative dimension", width, height)
		}
		s.Width, s.Height = width, height
		return nil
	default: // bkgcolor
		color, err := parseColor(keyword, args)
		s.Background = color
		return err
	}
}

func (p *sceneFileParser) parseRefraction(args []string) error {
	values, err := parseFloats("refraction", args, 1)
	if err != nil {
		return err
	}
	if values[0] <= 0 {
		return fmt.Errorf("refraction index %g is not positive", values[0])
	}
	p.scene.AmbientIndex = values[0]
	return nil
}

// parseMaterial reads Odr Odg Odb Osr Osg Osb ka kd ks n opacity ior
func (p *sceneFileParser) parseMaterial(args []string) error {
	v, err := parseFloats("mtlcolor", args, 12)
	if err != nil {
		return err
	}

	mat := material.NewMaterial(
		core.NewVec3(v[0], v[1], v[2]),
		core.NewVec3(v[3], v[4], v[5]),
		v[6], v[7], v[8], v[9],
	).WithTransparency(v[10], v[11])
	if err := mat.Validate(); err != nil {
		return err
	}

	p.scene.Materials = append(p.scene.Materials, mat)
	return nil
}

func (p *sceneFileParser) parseTexture(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("texture expects 1 path, got %d values", len(args))
	}

	path := args[0]
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.dir, path)
	}
	texture, err := LoadTexture(path)
	if err != nil {
		return err
	}

	p.scene.Textures = append(p.scene.Textures, texture)
	p.texture = len(p.scene.Textures) - 1
	return nil
}

func (p *sceneFileParser) parseVertex(args []string) error {
	v, err := parseVec3("v", args)
	if err != nil {
		return err
	}
	p.scene.Vertices = append(p.scene.Vertices, v)
	return nil
}

func (p *sceneFileParser) parseNormal(args []string) error {
	n, err := parseVec3("vn", args)
	if err != nil {
		return err
	}
	if n.IsZero() {
		return fmt.Errorf("vertex normal is the zero vector")
	}
	p.scene.Normals = append(p.scene.Normals, n.Normalize())
	return nil
}

func (p *sceneFileParser) parseUV(args []string) error {
	v, err := parseFloats("vt", args, 2)
	if err != nil {
		return err
	}
	if v[0] < 0 || v[0] > 1 || v[1] < 0 || v[1] > 1 {
		return fmt.Errorf("texture coordinate (%g, %g) is outside [0, 1]", v[0], v[1])
	}
	p.scene.UVs = append(p.scene.UVs, core.NewVec2(v[0], v[1]))
	return nil
}

// currentMaterial returns the index of the most recent mtlcolor
func (p *sceneFileParser) currentMaterial(keyword string) (int, error) {
	if len(p.scene.Materials) == 0 {
		return 0, fmt.Errorf("%s is not preceded by a mtlcolor", keyword)
	}
	return len(p.scene.Materials) - 1, nil
}

func (p *sceneFileParser) parseSphere(args []string) error {
	mat, err := p.currentMaterial("sphere")
	if err != nil {
		return err
	}
	v, err := parseFloats("sphere", args, 4)
	if err != nil {
		return err
	}
	if v[3] <= 0 {
		return fmt.Errorf("sphere radius %g is not positive", v[3])
	}

	p.scene.Objects = append(p.scene.Objects, ObjectStatement{
		Kind:     ObjectSphere,
		Line:     p.line,
		Center:   core.NewVec3(v[0], v[1], v[2]),
		Radii:    core.NewVec3(v[3], v[3], v[3]),
		Material: mat,
		Texture:  p.texture,
	})
	return nil
}

func (p *sceneFileParser) parseEllipsoid(args []string) error {
	mat, err := p.currentMaterial("ellipsoid")
	if err != nil {
		return err
	}
	v, err := parseFloats("ellipsoid", args, 6)
	if err != nil {
		return err
	}
	for i, axis := range []string{"x", "y", "z"} {
		if v[3+i] <= 0 {
			return fmt.Errorf("ellipsoid %s-radius %g is not positive", axis, v[3+i])
		}
	}

	p.scene.Objects = append(p.scene.Objects, ObjectStatement{
		Kind:     ObjectEllipsoid,
		Line:     p.line,
		Center:   core.NewVec3(v[0], v[1], v[2]),
		Radii:    core.NewVec3(v[3], v[4], v[5]),
		Material: mat,
		Texture:  p.texture,
	})
	return nil
}

// parseFace reads three v, v/t, v//n or v/t/n references. Every corner must
// use the same form.
func (p *sceneFileParser) parseFace(args []string) error {
	mat, err := p.currentMaterial("f")
	if err != nil {
		return err
	}
	if len(args) != 3 {
		return fmt.Errorf("f expects 3 vertices, got %d", len(args))
	}

	object := ObjectStatement{Kind: ObjectTriangle, Line: p.line, Material: mat, Texture: -1}
	var uvs, normals [3]int
	hasUV, hasNormal := false, false

	for i, arg := range args {
		parts := strings.Split(arg, "/")
		if len(parts) > 3 {
			return fmt.Errorf("malformed face vertex %q", arg)
		}

		if object.Vertices[i], err = faceIndex(parts[0], len(p.scene.Vertices), "vertex"); err != nil {
			return err
		}

		cornerUV := len(parts) >= 2 && parts[1] != ""
		cornerNormal := len(parts) == 3
		if i > 0 && (cornerUV != hasUV || cornerNormal != hasNormal) {
			return fmt.Errorf("face vertices %q and %q use different formats", args[0], arg)
		}
		hasUV, hasNormal = cornerUV, cornerNormal

		if cornerUV {
			if uvs[i], err = faceIndex(parts[1], len(p.scene.UVs), "texture coordinate"); err != nil {
				return err
			}
		}
		if cornerNormal {
			if normals[i], err = faceIndex(parts[2], len(p.scene.Normals), "normal"); err != nil {
				return err
			}
		}
	}

	if hasUV {
		object.UVs = &uvs
		object.Texture = p.texture
	}
	if hasNormal {
		object.Normals = &normals
	}

	p.scene.Objects = append(p.scene.Objects, object)
	return nil
}

// parseLight reads the four light statements:
//
//	light        x y z w r g b
//	attlight     x y z w r g b c1 c2 c3
//	spotlight    x y z dx dy dz angle r g b
//	attspotlight x y z dx dy dz angle r g b c1 c2 c3
func (p *sceneFileParser) parseLight(kind LightKind, args []string) error {
	keyword := [...]string{"light", "attlight", "spotlight", "attspotlight"}[kind]
	counts := [...]int{7, 10, 10, 13}

	v, err := parseFloats(keyword, args, counts[kind])
	if err != nil {
		return err
	}

	light := LightStatement{Kind: kind, Line: p.line, Position: core.NewVec3(v[0], v[1], v[2])}
	rest := v[3:]

	switch kind {
	case LightPoint, LightAttenuated:
		if rest[0] != 0 && rest[0] != 1 {
			return fmt.Errorf("%s type %g is not 0 (directional) or 1 (point)", keyword, rest[0])
		}
		light.Directional = rest[0] == 0
		if light.Directional && light.Position.IsZero() {
			return fmt.Errorf("directional %s has a zero direction", keyword)
		}
		rest = rest[1:]
	default:
		light.Direction = core.NewVec3(rest[0], rest[1], rest[2])
		if light.Direction.IsZero() {
			return fmt.Errorf("%s direction is the zero vector", keyword)
		}
		light.Angle = rest[3]
		if light.Angle <= 0 || light.Angle >= 90 {
			return fmt.Errorf("%s angle %g is not within (0, 90) degrees", keyword, light.Angle)
		}
		rest = rest[4:]
	}

	light.Color = core.NewVec3(rest[0], rest[1], rest[2])
	if err := checkColor(keyword+" color", light.Color); err != nil {
		return err
	}

	if kind == LightAttenuated || kind == LightAttenuatedSpot {
		light.Attenuation = lights.Attenuation{Constant: rest[3], Linear: rest[4], Quadratic: rest[5]}
		a := light.Attenuation
		if a.Constant < 0 || a.Linear < 0 || a.Quadratic < 0 {
			return fmt.Errorf("%s has a negative attenuation coefficient", keyword)
		}
		if a.Constant == 0 && a.Linear == 0 && a.Quadratic == 0 {
			return fmt.Errorf("%s attenuation coefficients are all zero", keyword)
		}
	}

	p.scene.Lights = append(p.scene.Lights, light)
	return nil
}

// finalize checks the statements that must appear exactly once
func (p *sceneFileParser) finalize() error {
	for _, keyword := range []string{"eye", "viewdir", "updir", "vfov", "imsize", "bkgcolor"} {
		if _, ok := p.seen[keyword]; !ok {
			return fmt.Errorf("missing required %s statement", keyword)
		}
	}
	if p.scene.ViewDir.Cross(p.scene.UpDir).IsZero() {
		return fmt.Errorf("line %d: updir is parallel to viewdir", max(p.seen["viewdir"], p.seen["updir"]))
	}
	return nil
}

// faceIndex converts a 1-based face reference to a 0-based index below count
func faceIndex(token string, count int, what string) (int, error) {
	index, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("invalid %s index %q", what, token)
	}
	if index < 1 || index > count {
		return 0, fmt.Errorf("%s index %d out of range (have %d)", what, index, count)
	}
	return index - 1, nil
}

func parseFloats(keyword string, args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s expects %d values, got %d", keyword, n, len(args))
	}
	values := make([]float64, n)
	for i, arg := range args {
		value, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid number %q", keyword, arg)
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, fmt.Errorf("%s: %q is not a finite number", keyword, arg)
		}
		values[i] = value
	}
	return values, nil
}

func parseVec3(keyword string, args []string) (core.Vec3, error) {
	v, err := parseFloats(keyword, args, 3)
	if err != nil {
		return core.Vec3{}, err
	}
	return core.NewVec3(v[0], v[1], v[2]), nil
}

func parseColor(keyword string, args []string) (core.Vec3, error) {
	c, err := parseVec3(keyword, args)
	if err != nil {
		return core.Vec3{}, err
	}
	return c, checkColor(keyword, c)
}

func checkColor(name string, c core.Vec3) error {
	for i, channel := range []string{"red", "green", "blue"} {
		if value := c.Component(i); value < 0 || value > 1 {
			return fmt.Errorf("%s %s value %g is not within [0, 1]", name, channel, value)
		}
	}
	return nil
}

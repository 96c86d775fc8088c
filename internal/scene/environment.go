package scene

import (
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// environmentPaths are tried in order so the backdrop is found whether run
// from the repo root or cmd/mockup.
var environmentPaths = []string{
	"assets/env/studio.png",
	"assets/env/studio.jpg",
	"../../assets/env/studio.png",
	"../../assets/env/studio.jpg",
}

const environmentScale = 1000

// environment is an equirectangular panorama drawn as a large cube around the
// camera. Whether it is drawn is the session's environment mode; whether it is
// loaded at all feeds the material mood (reflective vs matte).
type environment struct {
	tex       rl.Texture2D
	mesh      rl.Mesh
	mtl       rl.Material
	shader    rl.Shader
	camPosLoc int32
	texLoc    int32

	loaded  bool
	pending bool   // path known, GPU load deferred until first Draw
	path    string // custom path from config, tried before environmentPaths
}

// findPath picks the first existing environment image. GPU loading waits for
// the first frame so it runs after the window/GL context exists.
func (e *environment) findPath(custom string) {
	paths := environmentPaths
	if custom != "" {
		paths = append([]string{custom}, paths...)
	}
	for _, p := range paths {
		cleaned := filepath.Clean(p)
		if _, err := os.Stat(cleaned); err == nil {
			e.path = cleaned
			e.pending = true
			return
		}
	}
}

func (e *environment) ensureLoaded() {
	if !e.pending || e.path == "" {
		return
	}
	path := e.path
	e.pending = false
	e.path = ""

	e.tex = rl.LoadTexture(path)
	if !rl.IsTextureValid(e.tex) {
		return
	}
	shader := rl.LoadShaderFromMemory(panoramaVS, panoramaFS)
	if !rl.IsShaderValid(shader) {
		rl.UnloadTexture(e.tex)
		return
	}
	e.mesh = rl.GenMeshCube(1, 1, 1)
	e.mtl = rl.LoadMaterialDefault()
	e.mtl.Shader = shader
	e.camPosLoc = rl.GetShaderLocation(shader, "cameraPosition")
	e.texLoc = rl.GetShaderLocation(shader, "panorama")
	e.shader = shader
	e.loaded = true
}

// draw renders the backdrop. Call first inside BeginMode3D.
func (e *environment) draw(camPos rl.Vector3) {
	if !e.loaded {
		return
	}
	rl.DisableDepthMask()
	rl.DisableBackfaceCulling()
	scale := rl.MatrixScale(environmentScale, environmentScale, environmentScale)
	trans := rl.MatrixTranslate(camPos.X, camPos.Y, camPos.Z)
	transform := rl.MatrixMultiply(scale, trans)
	if e.camPosLoc >= 0 {
		pos := []float32{camPos.X, camPos.Y, camPos.Z}
		rl.SetShaderValueV(e.mtl.Shader, e.camPosLoc, pos, rl.ShaderUniformVec3, 1)
	}
	if e.texLoc >= 0 {
		rl.SetShaderValueTexture(e.mtl.Shader, e.texLoc, e.tex)
	}
	rl.DrawMesh(e.mesh, e.mtl, transform)
	rl.EnableBackfaceCulling()
	rl.EnableDepthMask()
}

// Equirectangular panorama shader: samples a 2D panorama by view direction.
const (
	panoramaVS = `#version 330
in vec3 vertexPosition;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragWorldPos;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragWorldPos = worldPos.xyz;
  gl_Position = matProjection * matView * worldPos;
}
`
	panoramaFS = `#version 330
in vec3 fragWorldPos;
out vec4 finalColor;
uniform sampler2D panorama;
uniform vec3 cameraPosition;
void main() {
  vec3 dir = normalize(fragWorldPos - cameraPosition);
  float lon = atan(dir.z, dir.x);
  float lat = asin(clamp(dir.y, -1.0, 1.0));
  float u = lon / 6.28318530718 + 0.5;
  float v = 0.5 - lat / 3.14159265359;
  finalColor = texture(panorama, vec2(u, v));
}
`
)

package scene

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/shape"
)

// materialCache holds one mesh per primitive plus the default and textured
// materials. Meshes and shaders are created lazily on first draw so GPU
// resources are allocated after the window/OpenGL context exists.
type materialCache struct {
	meshes   map[shape.Prim]rl.Mesh
	base     rl.Material // untextured faces and handles, tinted with baseColor
	textured rl.Material

	baseColor rl.Color
	viewPos   [3]float32
	lightDir  [3]float32
	// Lighting mood: matte by default, reflective when an environment image
	// contributes to the scene.
	ambient  [4]float32
	specular float32

	ready bool
}

const (
	sphereRings  = 32
	sphereSlices = 32
	strutSlices  = 12
)

var defaultLightColor = [3]float32{1.0, 0.98, 0.95}

const defaultLightIntensity = float32(0.8)
const defaultSpecularPower = float32(48.0)

func newMaterialCache(baseColor rl.Color) *materialCache {
	return &materialCache{
		meshes:    make(map[shape.Prim]rl.Mesh),
		baseColor: baseColor,
		lightDir:  [3]float32{0.5, 1, 0.35},
		ambient:   [4]float32{0.25, 0.26, 0.28, 1},
	}
}

// setFrame sets per-frame lighting state before any draw call. A loaded
// environment image lifts the ambient term whether or not the backdrop is
// shown; the reflective finish follows the visible backdrop, matte otherwise.
func (m *materialCache) setFrame(viewPos rl.Vector3, envLoaded, envVisible bool) {
	m.viewPos = [3]float32{viewPos.X, viewPos.Y, viewPos.Z}
	m.ambient = [4]float32{0.25, 0.26, 0.28, 1}
	m.specular = 0
	if envLoaded {
		m.ambient = [4]float32{0.34, 0.35, 0.38, 1}
		if envVisible {
			m.specular = 0.35
		}
	}
}

func (m *materialCache) ensure() {
	if m.ready {
		return
	}
	m.base = rl.LoadMaterialDefault()
	if albedo := m.base.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = m.baseColor
	}
	if sh := rl.LoadShaderFromMemory(litVS, litFS); rl.IsShaderValid(sh) {
		m.base.Shader = sh
	}
	m.textured = rl.LoadMaterialDefault()
	if albedo := m.textured.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.White
	}
	if sh := rl.LoadShaderFromMemory(litVS, litTexturedFS); rl.IsShaderValid(sh) {
		m.textured.Shader = sh
	}
	m.ready = true
}

func (m *materialCache) mesh(prim shape.Prim) rl.Mesh {
	if mesh, ok := m.meshes[prim]; ok {
		return mesh
	}
	var mesh rl.Mesh
	switch prim {
	case shape.PrimSphere:
		// Radius 0.5 so a uniform scale by d gives diameter d.
		mesh = rl.GenMeshSphere(0.5, sphereRings, sphereSlices)
	case shape.PrimStrut:
		mesh = rl.GenMeshCylinder(0.5, 1, strutSlices)
	default:
		// Unit quad in the XZ plane facing +Y.
		mesh = rl.GenMeshPlane(1, 1, 1, 1)
	}
	m.meshes[prim] = mesh
	return mesh
}

// drawPart draws one model part. tex nil means the default material.
func (m *materialCache) drawPart(part shape.Part, tex *rl.Texture2D) {
	m.ensure()
	mesh := m.mesh(part.Prim)
	mtl := m.base
	if tex != nil {
		mtl = m.textured
		rl.SetMaterialTexture(&mtl, rl.MapAlbedo, *tex)
	}
	m.setUniforms(mtl.Shader)
	rl.DrawMesh(mesh, mtl, partTransform(part))
}

// partTransform composes base offset, scale, rotation and translation.
// The strut mesh has its base at Y=0 and top at Y=1, so it is shifted down by
// half before scaling; quad and sphere meshes are already centered.
func partTransform(part shape.Part) rl.Matrix {
	transform := rl.MatrixScale(nonZero(part.Scale[0]), nonZero(part.Scale[1]), nonZero(part.Scale[2]))
	if part.Prim == shape.PrimStrut {
		transform = rl.MatrixMultiply(rl.MatrixTranslate(0, -0.5, 0), transform)
	}
	if part.AngleDeg != 0 {
		axis := rl.NewVector3(part.Axis[0], part.Axis[1], part.Axis[2])
		transform = rl.MatrixMultiply(transform, rl.MatrixRotate(axis, part.AngleDeg*math32.Pi/180))
	}
	return rl.MatrixMultiply(transform, rl.MatrixTranslate(part.Center[0], part.Center[1], part.Center[2]))
}

func nonZero(v float32) float32 {
	if v == 0 {
		return 1
	}
	return v
}

// setUniforms pushes per-frame lighting state (cgo-safe: local slices).
func (m *materialCache) setUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, m.viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, m.lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, m.ambient[:], rl.ShaderUniformVec4, 1)
	}
	lightColor := defaultLightColor
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightColor[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultLightIntensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{m.specular}, rl.ShaderUniformFloat)
	}
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float NdotH = max(dot(N, H), 0.0);
  float spec = pow(NdotH, specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
	litTexturedFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
uniform sampler2D albedoMap;
out vec4 finalColor;
void main() {
  vec4 texColor = texture(albedoMap, fragTexCoord);
  vec4 tint = texColor * colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float NdotH = max(dot(N, H), 0.0);
  float spec = pow(NdotH, specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)

package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// The lit shader is a directional light over a flat ambient term. colDiffuse tints the diffuse
// and specular parts; ambient is the object's own material color and is added unscaled.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
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
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = colDiffuse.rgb * NdotL * lightColor * lightIntensity;
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(clamp(ambient.rgb + diffuse + specular, 0.0, 1.0), ambient.a);
}
`
)

// diffuseColor is the albedo tint for every primitive.
var diffuseColor = rl.NewColor(128, 128, 128, 255)

var defaultLightColor = [3]float32{1.0, 0.98, 0.95}

const (
	defaultLightIntensity   = float32(0.75)
	defaultSpecularPower    = float32(48.0)
	defaultSpecularStrength = float32(0.35)
)

// litLocs caches uniform locations of the lit shader.
type litLocs struct {
	viewPos, lightDir, ambient int32
}

// loadLitMaterial returns the default material with the lit shader and the light uniforms that
// do not change per frame already set. When the shader fails to compile the default shader is
// kept and ok is false.
func loadLitMaterial() (mtl rl.Material, locs litLocs, ok bool) {
	mtl = rl.LoadMaterialDefault()
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = diffuseColor
	}
	shader := rl.LoadShaderFromMemory(litVS, litFS)
	if !rl.IsShaderValid(shader) {
		return mtl, litLocs{-1, -1, -1}, false
	}
	mtl.Shader = shader
	lightColor := [3]float32{defaultLightColor[0], defaultLightColor[1], defaultLightColor[2]}
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
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularStrength}, rl.ShaderUniformFloat)
	}
	locs = litLocs{
		viewPos:  rl.GetShaderLocation(shader, "viewPos"),
		lightDir: rl.GetShaderLocation(shader, "lightDir"),
		ambient:  rl.GetShaderLocation(shader, "ambient"),
	}
	return mtl, locs, true
}

package render

import rl "github.com/gen2brain/raylib-go/raylib"

// Planet shader: textured albedo lit by one directional light plus the environment
// ambient, with a weak broad highlight for a rough surface. Output is ACES tone mapped.
const (
	planetVS = `#version 330
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
	planetFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float specularPower;
uniform float specularStrength;
uniform float exposure;
out vec4 finalColor;
vec3 aces(vec3 x) {
  return clamp((x * (2.51 * x + 0.03)) / (x * (2.43 * x + 0.59) + 0.14), 0.0, 1.0);
}
void main() {
  vec4 albedo = texture(texture0, fragTexCoord) * colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = albedo.rgb * NdotL * lightColor;
  vec3 amb = ambient.rgb * albedo.rgb;
  float spec = pow(max(dot(N, normalize(L + V)), 0.0), specularPower) * specularStrength;
  vec3 color = (amb + diffuse + lightColor * spec * step(0.0, NdotL)) * exposure;
  finalColor = vec4(aces(color), albedo.a);
}
`
)

// Lighting defaults. ambient is replaced through SetAmbient once the environment is averaged.
var (
	defaultAmbient    = [4]float32{0.18, 0.19, 0.24, 1}
	defaultLightDir   = [3]float32{-0.6, 0.5, 0.8}
	defaultLightColor = [3]float32{1.0, 0.97, 0.92}
)

const (
	specularPower    = float32(12)
	specularStrength = float32(0.08)
	exposure         = float32(1)
)

func loadPlanetShader() rl.Shader {
	return rl.LoadShaderFromMemory(planetVS, planetFS)
}

// setPlanetUniforms uploads the per-frame lighting values (cgo-safe: local arrays).
func (r *Renderer) setPlanetUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := [3]float32{r.Camera.Position.X, r.Camera.Position.Y, r.Camera.Position.Z}
	light := r.lightDir
	amb := r.ambient
	color := defaultLightColor
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, light[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, color[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{specularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{specularStrength}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "exposure"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{exposure}, rl.ShaderUniformFloat)
	}
}

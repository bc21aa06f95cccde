package renderer

// =============================================================
//
//	Shader programs
//
// =============================================================

// Vertex attribute locations, fixed across the whole program set. The host
// pipeline must feed attributes at exactly these slots.
const (
	AttribPosition = 0
	AttribTexCoord = 1
	AttribNormal   = 2
	AttribTangent  = 3
	AttribJoints   = 4
	AttribWeights  = 5
)

// SamplerMapName is the 2D texture sampler of the textured basic program.
const SamplerMapName = "t_Map"

// BlockBinding names a uniform block slot a program expects bound.
type BlockBinding struct {
	Name     string
	Index    uint32
	Required bool
}

// SamplerBinding names a sampler a program expects bound.
type SamplerBinding struct {
	Name     string
	Required bool
}

// ShaderProgram bundles one vertex/fragment pair with the binding metadata
// a host pipeline needs to link and bind it.
type ShaderProgram struct {
	Name           string
	Family         PipelineFamily
	VertexSource   string
	FragmentSource string
	UniformBlocks  []BlockBinding
	Samplers       []SamplerBinding
}

// ProgramFor returns the program matching a material kind. Basic materials
// select the textured variant when textured is true.
func ProgramFor(kind MaterialKind, textured bool) ShaderProgram {
	switch kind {
	case KindBasic:
		if textured {
			return BasicTexturedProgram()
		}
		return BasicProgram()
	case KindGouraud:
		return GouraudProgram()
	case KindPhong:
		return PhongProgram()
	case KindShadow:
		return ShadowProgram()
	}
	return BasicProgram()
}

func standardBlockBindings() []BlockBinding {
	return []BlockBinding{
		{Name: LocalsBlockName, Index: LocalsBinding, Required: true},
		{Name: GlobalsBlockName, Index: GlobalsBinding, Required: true},
	}
}

func BasicProgram() ShaderProgram {
	return ShaderProgram{
		Name:           "basic",
		Family:         FamilyBasic,
		VertexSource:   basicVertexShaderSource,
		FragmentSource: basicFragmentShaderSource,
		UniformBlocks:  standardBlockBindings(),
	}
}

func BasicTexturedProgram() ShaderProgram {
	return ShaderProgram{
		Name:           "basic_with_texture",
		Family:         FamilyBasic,
		VertexSource:   basicVertexShaderSource,
		FragmentSource: basicTexturedFragmentShaderSource,
		UniformBlocks:  standardBlockBindings(),
		Samplers:       []SamplerBinding{{Name: SamplerMapName}},
	}
}

func GouraudProgram() ShaderProgram {
	return ShaderProgram{
		Name:           "gouraud",
		Family:         FamilyLit,
		VertexSource:   gouraudVertexShaderSource,
		FragmentSource: gouraudFragmentShaderSource,
		UniformBlocks:  standardBlockBindings(),
	}
}

func PhongProgram() ShaderProgram {
	return ShaderProgram{
		Name:           "phong",
		Family:         FamilyLit,
		VertexSource:   phongVertexShaderSource,
		FragmentSource: phongFragmentShaderSource,
		UniformBlocks:  standardBlockBindings(),
	}
}

func ShadowProgram() ShaderProgram {
	return ShaderProgram{
		Name:           "shadow",
		Family:         FamilyShadow,
		VertexSource:   shadowVertexShaderSource,
		FragmentSource: shadowFragmentShaderSource,
		UniformBlocks: []BlockBinding{
			{Name: LocalsBlockName, Index: LocalsBinding, Required: true},
		},
	}
}

// lightStructsSource is shared by every lit-family shader; std140 offsets
// match the encoders in uniforms.go field for field.
const lightStructsSource = `
struct AmbientLight {
    vec3 color;
    float intensity;
};

struct DirectionalLight {
    vec4 position;
    vec3 direction;
    vec3 color;
    float intensity;
};

struct PointLight {
    vec4 position;
    vec3 color;
    float intensity;
};

const int MAX_POINT_LIGHTS = 8;
`

var basicVertexShaderSource = `#version 330 core

layout(location = 0) in vec4 a_Position;
layout(location = 1) in vec2 a_TexCoord;

layout(std140) uniform b_Globals {
    mat4 u_ViewProjection;
    mat4 u_InverseProjection;
    mat4 u_View;
    uint u_NumLights;
};

layout(std140) uniform b_Locals {
    mat4 u_World;
    vec4 u_Color;
    vec4 u_UvRange;
};

out vec2 v_TexCoord;

void main() {
    // Remap into the atlas sub-rectangle
    v_TexCoord = mix(u_UvRange.xy, u_UvRange.zw, a_TexCoord);
    gl_Position = u_ViewProjection * u_World * a_Position;
}
`

var basicFragmentShaderSource = `#version 330 core

layout(std140) uniform b_Locals {
    mat4 u_World;
    vec4 u_Color;
    vec4 u_UvRange;
};

in vec2 v_TexCoord;

out vec4 Target0;

void main() {
    Target0 = u_Color;
}
`

var basicTexturedFragmentShaderSource = `#version 330 core

layout(std140) uniform b_Locals {
    mat4 u_World;
    vec4 u_Color;
    vec4 u_UvRange;
};

uniform sampler2D t_Map;

in vec2 v_TexCoord;

out vec4 Target0;

void main() {
    Target0 = u_Color * texture(t_Map, v_TexCoord);
}
`

var gouraudVertexShaderSource = `#version 330 core
` + lightStructsSource + `
layout(location = 0) in vec4 a_Position;
layout(location = 2) in vec3 a_Normal;

layout(std140) uniform b_Globals {
    mat4 u_ViewProjection;
    AmbientLight u_AmbientLight;
    DirectionalLight u_DirectionalLight;
};

layout(std140) uniform b_Locals {
    mat4 u_World;
    vec4 u_Color;
    float u_Smoothness;
    PointLight u_PointLights[MAX_POINT_LIGHTS];
};

out vec4 v_ColorSmooth;
flat out vec4 v_ColorFlat;

void main() {
    vec4 world = u_World * a_Position;
    // mat3 drops translation; correct for uniform-scale world matrices only
    vec3 normal = normalize(mat3(u_World) * a_Normal);

    vec3 lit = u_AmbientLight.color * u_AmbientLight.intensity;
    for (int i = 0; i < MAX_POINT_LIGHTS; i++) {
        PointLight light = u_PointLights[i];
        vec3 dir = normalize(light.position.xyz - world.xyz);
        lit += light.intensity * light.color * max(0.0, dot(normal, dir));
    }

    vec4 color = vec4(lit, 1.0) * u_Color;
    v_ColorSmooth = color;
    v_ColorFlat = color;
    gl_Position = u_ViewProjection * world;
}
`

var gouraudFragmentShaderSource = `#version 330 core
` + lightStructsSource + `
layout(std140) uniform b_Locals {
    mat4 u_World;
    vec4 u_Color;
    float u_Smoothness;
    PointLight u_PointLights[MAX_POINT_LIGHTS];
};

in vec4 v_ColorSmooth;
flat in vec4 v_ColorFlat;

out vec4 Target0;

void main() {
    Target0 = mix(v_ColorFlat, v_ColorSmooth, u_Smoothness);
}
`

var phongVertexShaderSource = `#version 330 core
` + lightStructsSource + `
layout(location = 0) in vec4 a_Position;
layout(location = 2) in vec3 a_Normal;

layout(std140) uniform b_Globals {
    mat4 u_ViewProjection;
    AmbientLight u_AmbientLight;
    DirectionalLight u_DirectionalLight;
};

layout(std140) uniform b_Locals {
    mat4 u_World;
    float u_Glossiness;
    PointLight u_PointLights[MAX_POINT_LIGHTS];
};

out vec3 v_Position;
out vec3 v_Normal;

void main() {
    vec4 world = u_World * a_Position;
    v_Position = world.xyz;
    v_Normal = normalize(mat3(u_World) * a_Normal);
    gl_Position = u_ViewProjection * world;
}
`

var phongFragmentShaderSource = `#version 330 core
` + lightStructsSource + `
layout(std140) uniform b_Globals {
    mat4 u_ViewProjection;
    AmbientLight u_AmbientLight;
    DirectionalLight u_DirectionalLight;
};

layout(std140) uniform b_Locals {
    mat4 u_World;
    float u_Glossiness;
    PointLight u_PointLights[MAX_POINT_LIGHTS];
};

in vec3 v_Position;
in vec3 v_Normal;

out vec4 Target0;

void main() {
    vec3 normal = normalize(v_Normal);
    vec3 ambient = u_AmbientLight.color * u_AmbientLight.intensity;
    vec3 diffuse = vec3(0.0);
    // Specular accumulator is declared but never fed; the specular path is
    // an unfinished feature and stays zero.
    vec3 specular = vec3(0.0);

    vec3 dirToLight = normalize(-u_DirectionalLight.direction);
    diffuse += u_DirectionalLight.intensity * u_DirectionalLight.color
        * max(0.0, dot(normal, dirToLight));

    for (int i = 0; i < MAX_POINT_LIGHTS; i++) {
        PointLight light = u_PointLights[i];
        vec3 dir = normalize(light.position.xyz - v_Position);
        diffuse += light.intensity * light.color * max(0.0, dot(normal, dir));
    }

    Target0 = vec4(ambient + diffuse + specular, 1.0);
}
`

var shadowVertexShaderSource = `#version 330 core

layout(location = 0) in vec4 a_Position;

layout(std140) uniform b_Locals {
    mat4 u_ModelViewProjection;
};

out float v_Depth;

void main() {
    vec4 clip = u_ModelViewProjection * a_Position;
    v_Depth = clip.z / clip.w;
    gl_Position = clip;
}
`

var shadowFragmentShaderSource = `#version 330 core

in float v_Depth;

out vec4 Target0;

void main() {
    Target0 = vec4(v_Depth, 0.0, 0.0, 0.0);
}
`

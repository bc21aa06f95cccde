package renderer

import (
	"strings"
	"testing"
)

func allPrograms() []ShaderProgram {
	return []ShaderProgram{
		BasicProgram(),
		BasicTexturedProgram(),
		GouraudProgram(),
		PhongProgram(),
		ShadowProgram(),
	}
}

func TestProgramsDeclareStd140Blocks(t *testing.T) {
	for _, p := range allPrograms() {
		for _, stage := range []string{p.VertexSource, p.FragmentSource} {
			if strings.Contains(stage, "uniform b_") &&
				!strings.Contains(stage, "layout(std140)") {
				t.Errorf("%s: uniform block without std140 layout", p.Name)
			}
		}
		for _, block := range p.UniformBlocks {
			if !strings.Contains(p.VertexSource, block.Name) &&
				!strings.Contains(p.FragmentSource, block.Name) {
				t.Errorf("%s: bound block %q not declared in either stage",
					p.Name, block.Name)
			}
		}
	}
}

func TestBindingIndices(t *testing.T) {
	for _, p := range allPrograms() {
		for _, block := range p.UniformBlocks {
			switch block.Name {
			case LocalsBlockName:
				if block.Index != LocalsBinding {
					t.Errorf("%s: b_Locals at index %d, want %d",
						p.Name, block.Index, LocalsBinding)
				}
			case GlobalsBlockName:
				if block.Index != GlobalsBinding {
					t.Errorf("%s: b_Globals at index %d, want %d",
						p.Name, block.Index, GlobalsBinding)
				}
			default:
				t.Errorf("%s: unexpected block %q", p.Name, block.Name)
			}
		}
	}
}

func TestShadowProgramBindsNoGlobals(t *testing.T) {
	p := ShadowProgram()

	for _, block := range p.UniformBlocks {
		if block.Name == GlobalsBlockName {
			t.Error("shadow program must not bind b_Globals")
		}
	}
	if strings.Contains(p.VertexSource, GlobalsBlockName) {
		t.Error("shadow vertex stage must not declare b_Globals")
	}
}

func TestOnlyTexturedProgramSamples(t *testing.T) {
	for _, p := range allPrograms() {
		samples := strings.Contains(p.FragmentSource, SamplerMapName)
		declares := len(p.Samplers) > 0

		if samples != declares {
			t.Errorf("%s: sampler declaration and usage disagree", p.Name)
		}
		if p.Name == "basic_with_texture" && !samples {
			t.Error("textured basic program must sample t_Map")
		}
		if p.Name == "basic" && samples {
			t.Error("untextured basic program must not sample")
		}
	}
}

func TestTexturedPathModulatesNotReplaces(t *testing.T) {
	// the restored sampling path multiplies by u_Color rather than
	// hard-coding a placeholder
	p := BasicTexturedProgram()
	if !strings.Contains(p.FragmentSource, "u_Color * texture(t_Map, v_TexCoord)") {
		t.Error("textured fragment should output color * sample")
	}
}

func TestProgramForMapping(t *testing.T) {
	if ProgramFor(KindBasic, false).Name != "basic" {
		t.Error("plain basic material maps to basic program")
	}
	if ProgramFor(KindBasic, true).Name != "basic_with_texture" {
		t.Error("textured basic material maps to textured program")
	}
	if ProgramFor(KindGouraud, false).Name != "gouraud" {
		t.Error("gouraud material maps to gouraud program")
	}
	if ProgramFor(KindPhong, false).Name != "phong" {
		t.Error("phong material maps to phong program")
	}
	if ProgramFor(KindShadow, false).Name != "shadow" {
		t.Error("shadow material maps to shadow program")
	}
}

func TestAttributeLocations(t *testing.T) {
	// position=0, texcoord=1, normal=2 are load-bearing across the set
	if AttribPosition != 0 || AttribTexCoord != 1 || AttribNormal != 2 ||
		AttribTangent != 3 || AttribJoints != 4 || AttribWeights != 5 {
		t.Error("attribute locations are part of the binding contract")
	}

	for _, p := range allPrograms() {
		if !strings.Contains(p.VertexSource, "layout(location = 0) in vec4 a_Position") {
			t.Errorf("%s: position attribute must be vec4 at location 0", p.Name)
		}
	}
}

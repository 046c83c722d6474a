package config

import (
	"errors"
	"os"
	"path/filepath"

	"doomfire/internal/sims/fire"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Settings", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, []byte(body), 0644)).To(Succeed())
		return path
	}

	It("defaults to a valid classic fire", func() {
		s := DefaultSettings()
		Expect(s.Validate()).To(Succeed())
		Expect(s.Fire).To(Equal(fire.DefaultConfig()))
		Expect(s.Display.Backend).To(Equal("term"))
		Expect(s.Display.TPS).To(Equal(60))
	})

	It("round-trips through Save and Load", func() {
		s := DefaultSettings()
		s.Fire.Width = 80
		s.Fire.Params.IgnitionOdds = 12
		s.Display.Backend = "tui"
		s.Display.Sound = true
		path := filepath.Join(dir, "fire.yaml")

		Expect(Save(path, s)).To(Succeed())
		loaded, err := Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded).To(Equal(s))
	})

	It("keeps defaults for fields the file omits", func() {
		path := write("partial.yaml", "fire:\n  width: 50\n  params:\n    ember_floor: 20\n")
		s, err := Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Fire.Width).To(Equal(50))
		Expect(s.Fire.Height).To(Equal(40))
		Expect(s.Fire.Params.EmberFloor).To(Equal(20))
		Expect(s.Fire.Params.IgnitionOdds).To(Equal(32))
		Expect(s.Display.TPS).To(Equal(DefaultTPS))
	})

	It("applies a preset named in the file before the file's values", func() {
		path := write("preset.yaml", "preset: sketch\nfire:\n  seed: 7\n")
		s, err := Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Preset).To(Equal("sketch"))
		Expect(s.Fire.Width).To(Equal(100))
		Expect(s.Fire.Height).To(Equal(35))
		Expect(s.Fire.Seed).To(Equal(int64(7)))
	})

	It("layers a file over already-resolved settings", func() {
		s := DefaultSettings()
		Expect(s.ApplyPreset("inferno")).To(Succeed())
		path := write("layer.yaml", "fire:\n  width: 60\n")
		Expect(LoadInto(path, s)).To(Succeed())
		Expect(s.Fire.Width).To(Equal(60))
		Expect(s.Fire.Params.IgnitionOdds).To(Equal(6))
		Expect(s.Fire.Params.EmberFloor).To(Equal(40))
	})

	It("leaves validation of a layered file to the caller", func() {
		s := DefaultSettings()
		path := write("short.yaml", "fire:\n  height: 2\n")
		Expect(LoadInto(path, s)).To(Succeed())
		Expect(s.Fire.Height).To(Equal(2))
		Expect(errors.Is(s.Validate(), fire.ErrInvalidConfig)).To(BeTrue())

		s.Fire.Height = 12
		Expect(s.Validate()).To(Succeed())
	})

	It("rejects invalid fire geometry with the fire sentinel", func() {
		path := write("bad.yaml", "fire:\n  height: 2\n")
		_, err := Load(path)
		Expect(errors.Is(err, fire.ErrInvalidConfig)).To(BeTrue())
	})

	It("rejects unknown backends and rates", func() {
		s := DefaultSettings()
		s.Display.Backend = "vga"
		Expect(s.Validate()).To(MatchError(ContainSubstring("unknown backend")))

		s = DefaultSettings()
		s.Display.TPS = 0
		Expect(s.Validate()).To(HaveOccurred())

		s = DefaultSettings()
		s.Display.Scale = 0
		Expect(s.Validate()).To(HaveOccurred())
	})

	It("reports malformed YAML and missing files", func() {
		_, err := Load(write("broken.yaml", "fire: [1, 2"))
		Expect(err).To(HaveOccurred())
		_, err = Load(filepath.Join(dir, "missing.yaml"))
		Expect(os.IsNotExist(err)).To(BeTrue())
	})
})

var _ = Describe("Presets", func() {
	It("lists presets in order", func() {
		Expect(ListPresets()).To(Equal([]string{"classic", "embers", "inferno", "sketch", "tiny"}))
	})

	It("builds only valid configurations", func() {
		for _, name := range ListPresets() {
			Expect(GetPreset(name).Validate()).To(Succeed(), name)
		}
	})

	It("hands out independent copies", func() {
		a := GetPreset("classic")
		a.Width = 1
		Expect(GetPreset("classic").Width).To(Equal(140))
	})

	It("returns nil for unknown presets", func() {
		Expect(GetPreset("nonexistent")).To(BeNil())
		s := DefaultSettings()
		Expect(s.ApplyPreset("nonexistent")).To(MatchError(ContainSubstring("unknown preset")))
	})
})

package plugin

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ncscatter/internal/host"
	"github.com/san-kum/ncscatter/internal/physics"
)

var _ = Describe("Factory", func() {
	var (
		reg     *host.Registry
		factory *Factory
	)

	BeforeEach(func() {
		reg = newRegistry()
		factory = NewFactory(reg)
	})

	It("uses the standard factory name form", func() {
		Expect(factory.Name()).To(Equal("CutoffFactory"))
	})

	Describe("Query", func() {
		DescribeTable("disabled inelastic modes are never served",
			func(inelas string, withModel bool) {
				req := host.NewScatterRequest(newMaterial(withModel))
				req.Inelas = inelas
				Expect(factory.Query(req)).To(Equal(host.Unable))
			},
			Entry("none", "none", true),
			Entry("0", "0", true),
			Entry("false", "false", true),
			Entry("sterile", "sterile", true),
			Entry("sterile without model data", "sterile", false),
		)

		It("does not inspect material content when disabled", func() {
			req := host.NewScatterRequest(nil)
			req.Inelas = "sterile"
			p, err := factory.Query(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(p).To(Equal(host.Unable))
		})

		It("matches disabled modes exactly", func() {
			for _, inelas := range []string{"None", "FALSE", " none", "sterile ", "00"} {
				req := host.NewScatterRequest(newMaterial(true))
				req.Inelas = inelas
				Expect(factory.Query(req)).To(Equal(Priority), "inelas=%q", inelas)
			}
		})

		It("returns Unable for a nil request and refuses to produce for it", func() {
			p, err := factory.Query(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(p).To(Equal(host.Unable))

			_, err = factory.Produce(nil)
			Expect(errors.Is(err, host.ErrBadInput)).To(BeTrue())
		})

		It("returns Unable for a material lacking model data", func() {
			req := host.NewScatterRequest(newMaterial(false))
			Expect(factory.Query(req)).To(Equal(host.Unable))
		})

		It("takes precedence for an applicable material", func() {
			req := host.NewScatterRequest(newMaterial(true))
			p, err := factory.Query(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(p).To(Equal(host.Priority(999)))
			Expect(p.Overrides()).To(BeTrue())
		})

		It("surfaces malformed material info as an error", func() {
			m := newMaterial(true)
			m.Composition[0].Fraction = 0.3
			_, err := factory.Query(host.NewScatterRequest(m))
			Expect(errors.Is(err, host.ErrBadInput)).To(BeTrue())
		})
	})

	Describe("Produce", func() {
		It("combines the plugin process with the standard process", func() {
			req := host.NewScatterRequest(newMaterial(true))
			proc, err := factory.Produce(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(proc).NotTo(BeNil())

			comp, ok := proc.(*host.ProcComposition)
			Expect(ok).To(BeTrue())
			names := []string{}
			for _, c := range comp.Components() {
				names = append(names, c.Name())
			}
			Expect(names).To(ConsistOf("FreeElastic", "CutoffModel"))
		})

		It("adds the model cross-section to the standard one", func() {
			req := host.NewScatterRequest(newMaterial(true))
			proc, err := factory.Produce(req)
			Expect(err).NotTo(HaveOccurred())

			std, err := host.NewStdFactory().Produce(req)
			Expect(err).NotTo(HaveOccurred())
			pm, err := physics.CreateFromInfo(req.Info)
			Expect(err).NotTo(HaveOccurred())

			for _, ekin := range []float64{1e-5, 1e-3, pm.CutoffEkin(), 0.025, 1.0} {
				want := float64(std.CrossSectionIsotropic(nil, host.NeutronEnergy(ekin))) + pm.CalcCrossSection(ekin)
				got := float64(proc.CrossSectionIsotropic(host.NewCache(), host.NeutronEnergy(ekin)))
				Expect(got).To(BeNumerically("~", want, 1e-12))
			}
		})

		It("asks for the standard process excluding itself", func() {
			stub := &stubCreator{proc: host.NewFreeElastic(1)}
			f := NewFactory(stub)
			_, err := f.Produce(host.NewScatterRequest(newMaterial(true)))
			Expect(err).NotTo(HaveOccurred())
			Expect(stub.excluded).To(Equal([]string{"CutoffFactory"}))
		})

		It("returns only the plugin process when the standard treatment is empty", func() {
			stub := &stubCreator{proc: host.NullProcess()}
			proc, err := NewFactory(stub).Produce(host.NewScatterRequest(newMaterial(true)))
			Expect(err).NotTo(HaveOccurred())
			Expect(proc.Name()).To(Equal("CutoffModel"))
		})

		It("propagates model construction failures", func() {
			m := newMaterial(false)
			m.CustomSections = map[string][]host.CustomSection{
				physics.SectionName: {{{"oops", "4.0"}}},
			}
			stub := &stubCreator{proc: host.NullProcess()}
			_, err := NewFactory(stub).Produce(host.NewScatterRequest(m))
			Expect(errors.Is(err, host.ErrBadInput)).To(BeTrue())
			Expect(stub.excluded).To(BeEmpty())
		})

		It("propagates standard process failures", func() {
			cause := errors.New("std broke")
			stub := &stubCreator{err: cause}
			_, err := NewFactory(stub).Produce(host.NewScatterRequest(newMaterial(true)))
			Expect(err).To(MatchError(cause))
		})
	})

	Describe("host resolution", func() {
		It("selects the plugin over the standard factory", func() {
			req := host.NewScatterRequest(newMaterial(true))
			cands, err := reg.QueryAll(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(cands[0]).To(Equal(host.Candidate{Factory: "CutoffFactory", Priority: 999}))
			Expect(cands[1]).To(Equal(host.Candidate{Factory: host.StdFactoryName, Priority: host.StandardPriority}))

			proc, err := reg.CreateScatter(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(proc.Name()).To(Equal("ProcComposition(FreeElastic+CutoffModel)"))
		})

		It("falls back to the standard factory when inelastic is sterile", func() {
			req := host.NewScatterRequest(newMaterial(true))
			req.Inelas = "sterile"
			proc, err := reg.CreateScatter(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(proc.Name()).To(Equal("FreeElastic"))
		})
	})
})

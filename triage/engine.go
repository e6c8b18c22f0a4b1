package triage

import (
	"github.com/dermalens/triage-api/knowledge"
	"github.com/dermalens/triage-api/triage/entities"
)

// Request is one analysis input: an upstream classifier label with its
// confidence and the user-reported symptoms.
type Request struct {
	Disease    string   `json:"disease"`
	Confidence float64  `json:"confidence"`
	Symptoms   []string `json:"symptoms"`
}

// clampConfidence forces an out-of-range classifier confidence into [0, 1].
// Stage entry points accept any float so callers outside the HTTP layer
// never need to pre-validate.
func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// Engine runs the full pipeline: symptom normalization, disease-symptom
// alignment, multi-factor severity assessment and safety-validated
// recommendation synthesis. An Engine is immutable and safe for concurrent
// use; rebuilding the knowledge base means building a new Engine.
type Engine struct {
	kb          *knowledge.Base
	normalizer  *Normalizer
	aligner     *Aligner
	assessor    *Assessor
	synthesizer *Synthesizer
}

func NewEngine(kb *knowledge.Base) *Engine {
	return &Engine{
		kb:          kb,
		normalizer:  NewNormalizer(kb),
		aligner:     NewAligner(kb),
		assessor:    NewAssessor(kb),
		synthesizer: NewSynthesizer(kb),
	}
}

// Base exposes the knowledge store backing this engine.
func (e *Engine) Base() *knowledge.Base { return e.kb }

// Normalizer exposes the symptom normalization stage.
func (e *Engine) Normalizer() *Normalizer { return e.normalizer }

// Aligner exposes the disease-symptom alignment stage.
func (e *Engine) Aligner() *Aligner { return e.aligner }

// Assessor exposes the severity assessment stage.
func (e *Engine) Assessor() *Assessor { return e.assessor }

// Synthesizer exposes the recommendation stage.
func (e *Engine) Synthesizer() *Synthesizer { return e.synthesizer }

// Analyze runs the complete pipeline for one request. SymptomAnalysis is nil
// when the request carries no symptoms; assessment and recommendations are
// still produced from the label and confidence alone.
func (e *Engine) Analyze(req Request) entities.TriageResult {
	var result entities.TriageResult

	canonical := make([]string, 0, len(req.Symptoms))
	if len(req.Symptoms) > 0 {
		normalized := e.normalizer.NormalizeAll(req.Symptoms)
		for _, n := range normalized {
			if n.Canonical != "" {
				canonical = append(canonical, n.Canonical)
			}
		}
		summary := e.normalizer.Summarize(normalized)
		result.SeveritySummary = &summary

		alignment := e.aligner.MatchWithConfidence(req.Disease, canonical, req.Confidence)
		result.SymptomAnalysis = &alignment
	}

	result.Severity = e.assessor.Assess(req.Disease, req.Confidence, canonical)
	result.Recommendations = e.synthesizer.Generate(
		req.Disease, result.Severity.Level, canonical, req.Confidence)
	return result
}

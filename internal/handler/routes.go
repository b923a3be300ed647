package handler

import (
	"fmt"

	"github.com/rpgo/retirement-planner/internal/calculation"
	"github.com/rpgo/retirement-planner/internal/domain"
)

func (h *Handler) portfolios(body []byte) (interface{}, error) {
	var req PortfoliosRequest
	if err := decode(body, &req); err != nil {
		return nil, err
	}
	if err := normalizeProfile(&req.Profile); err != nil {
		return nil, err
	}
	portfolios, err := h.engine.GeneratePortfolios(req.Profile)
	if err != nil {
		return nil, err
	}
	resp := PortfoliosResponse{Portfolios: portfolios}
	if req.Adjust != nil {
		p, err := pickPortfolio(portfolios, req.Adjust.Tier)
		if err != nil {
			return nil, err
		}
		adjusted := h.engine.AdjustPortfolio(p, req.Adjust.Delta)
		resp.Adjusted = &adjusted
	}
	return resp, nil
}

func (h *Handler) socialSecurity(body []byte) (interface{}, error) {
	var req SocialSecurityRequest
	if err := decode(body, &req); err != nil {
		return nil, err
	}
	estimate, err := h.engine.EstimateSocialSecurity(req.AverageIncome, req.YearsWorked, req.ClaimingAge)
	if err != nil {
		return nil, err
	}
	resp := SocialSecurityResponse{Estimate: estimate}
	if req.AnnualWithdrawal.IsPositive() {
		cmp := calculation.CompareWithPortfolio(estimate, domain.Portfolio{AnnualWithdrawal: req.AnnualWithdrawal})
		resp.Comparison = &cmp
	}
	if req.CompareAge != 0 && req.CompareAge != req.ClaimingAge {
		earlier, later := min(req.ClaimingAge, req.CompareAge), max(req.ClaimingAge, req.CompareAge)
		be, err := h.engine.ClaimingBreakEven(req.AverageIncome, req.YearsWorked, earlier, later)
		if err != nil {
			return nil, err
		}
		resp.BreakEven = &be
	}
	return resp, nil
}

func (h *Handler) contribution(body []byte) (interface{}, error) {
	var req domain.ContributionRequest
	if err := decode(body, &req); err != nil {
		return nil, err
	}
	if req.Direction == "" {
		req.Direction = domain.DirectionForward
	} else {
		d, err := domain.ParseDirection(string(req.Direction))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errBadRequest, err)
		}
		req.Direction = d
	}
	return h.engine.SolveContribution(req)
}

func (h *Handler) delay(body []byte) (interface{}, error) {
	var req DelayRequest
	if err := decode(body, &req); err != nil {
		return nil, err
	}
	p, err := h.resolvePortfolio(&req.TierRequest)
	if err != nil {
		return nil, err
	}
	return h.engine.ComputeDelayImpact(req.Profile, p, req.Years)
}

func (h *Handler) tax(body []byte) (interface{}, error) {
	var req TaxRequest
	if err := decode(body, &req); err != nil {
		return nil, err
	}
	at, err := domain.ParseAccountType(string(req.Tax.AccountType))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	req.Tax.AccountType = at
	p, err := h.resolvePortfolio(&req.TierRequest)
	if err != nil {
		return nil, err
	}
	return h.engine.ComputeTaxImpact(req.Profile, p, req.Tax)
}

func (h *Handler) projection(body []byte) (interface{}, error) {
	var req ProjectionRequest
	if err := decode(body, &req); err != nil {
		return nil, err
	}
	p, err := h.resolvePortfolio(&req.TierRequest)
	if err != nil {
		return nil, err
	}
	projection, err := h.engine.ProjectLifetime(req.Profile, p)
	if err != nil {
		return nil, err
	}
	resp := ProjectionResponse{
		Projection:         projection,
		WithdrawalSchedule: h.engine.WithdrawalSchedule(p, h.engine.Assumptions.RetirementYears),
	}
	if len(req.MilestoneYears) > 0 {
		if resp.Milestones, err = h.engine.Milestones(req.Profile, p, req.MilestoneYears); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

// resolvePortfolio generates the profile's portfolios and returns the requested tier.
func (h *Handler) resolvePortfolio(req *TierRequest) (domain.Portfolio, error) {
	if err := normalizeProfile(&req.Profile); err != nil {
		return domain.Portfolio{}, err
	}
	portfolios, err := h.engine.GeneratePortfolios(req.Profile)
	if err != nil {
		return domain.Portfolio{}, err
	}
	return pickPortfolio(portfolios, req.Tier)
}

func pickPortfolio(portfolios []domain.Portfolio, tier domain.TierName) (domain.Portfolio, error) {
	if tier == "" {
		return portfolios[0], nil
	}
	name, err := domain.ParseTierName(string(tier))
	if err != nil {
		return domain.Portfolio{}, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	for _, p := range portfolios {
		if p.Tier == name {
			return p, nil
		}
	}
	return domain.Portfolio{}, fmt.Errorf("%w: tier %s not generated", errBadRequest, name)
}

// normalizeProfile applies the same spelling rules as the YAML loader.
func normalizeProfile(p *domain.RetirementProfile) error {
	rt, err := domain.ParseRiskTolerance(string(p.RiskTolerance))
	if err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	p.RiskTolerance = rt
	return nil
}

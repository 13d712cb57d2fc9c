package rank

import (
	"fmt"
	"sort"

	"paipuScope/internal/model"
)

// Ranks joins the header's result block to its account list and computes
// final standings. Each seat result is matched to the account sharing its
// seat; a result or account without a seat field occupies the implicit
// seat 0, so the single seat-less pair matches each other. A seat with no
// matching account means the decode stage produced inconsistent data and
// is an error, never a silent drop.
func Ranks(head *model.MatchHead) ([]model.PlayerRank, error) {
	ranks := make([]model.PlayerRank, 0, len(head.Result.Players))
	for _, result := range head.Result.Players {
		account, err := accountAtSeat(head.Accounts, result.Seat)
		if err != nil {
			return nil, err
		}
		ranks = append(ranks, model.PlayerRank{
			ID:         account.AccountID,
			Seat:       result.Seat,
			Nickname:   account.Nickname,
			FinalPoint: result.FinalPoint,
		})
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].FinalPoint > ranks[j].FinalPoint
	})
	for i := range ranks {
		ranks[i].Rank = i + 1
	}
	return ranks, nil
}

// Highlights scans round records for notable hands. A hand contributes
// one entry per important yaku it holds; a hand with no important yaku
// but a yakuman multiplicity of 13 or more contributes the single
// counted-yakuman fallback. Never both.
func Highlights(records []model.RoundRecord, ranks []model.PlayerRank) ([]model.NotedYaku, error) {
	var noted []model.NotedYaku
	for _, record := range records {
		for _, hule := range record.Hules {
			important := false
			for _, fan := range hule.Fans {
				name, ok := YakuName(fan.ID)
				if !ok {
					return nil, fmt.Errorf("unknown hand-type code %d at seat %d", fan.ID, hule.Seat)
				}
				if !isImportant(name) {
					continue
				}
				important = true
				player, err := playerAtSeat(ranks, hule.Seat)
				if err != nil {
					return nil, err
				}
				noted = append(noted, model.NotedYaku{Yaku: name, Player: player})
			}
			if !important && hule.Count >= 13 {
				player, err := playerAtSeat(ranks, hule.Seat)
				if err != nil {
					return nil, err
				}
				noted = append(noted, model.NotedYaku{Yaku: CountedYakuman, Player: player})
			}
		}
	}
	return noted, nil
}

func accountAtSeat(accounts []model.Account, seat int) (model.Account, error) {
	for _, account := range accounts {
		if account.Seat == seat {
			return account, nil
		}
	}
	return model.Account{}, fmt.Errorf("no account at seat %d", seat)
}

func playerAtSeat(ranks []model.PlayerRank, seat int) (model.PlayerRank, error) {
	for _, player := range ranks {
		if player.Seat == seat {
			return player, nil
		}
	}
	return model.PlayerRank{}, fmt.Errorf("no ranked player at seat %d", seat)
}

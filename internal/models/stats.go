package models

import "time"

// Stats is the daily snapshot of Torn's game-wide aggregate counters.
// The row date comes from the upstream payload timestamp, not the local
// collection clock. The counters are a straight copy of the upstream
// values; no per-counter logic exists anywhere in the collector.
//
// JSON tags match the upstream field names so the API payload can be
// decoded directly into this struct.
type Stats struct {
	ID   uint      `json:"-" gorm:"primaryKey"`
	Date time.Time `json:"-" gorm:"uniqueIndex;not null"`

	// Population
	UsersTotal          int64 `json:"users_total"`
	UsersMale           int64 `json:"users_male"`
	UsersFemale         int64 `json:"users_female"`
	UsersMarriedCouples int64 `json:"users_marriedcouples"`
	UsersDaily          int64 `json:"users_daily"`
	TotalUsersLogins    int64 `json:"total_users_logins"`

	// Economy
	MoneyOnhand            int64 `json:"money_onhand"`
	MoneyAverage           int64 `json:"money_average"`
	MoneyCitybank          int64 `json:"money_citybank"`
	Items                  int64 `json:"items"`
	PointsTotal            int64 `json:"points_total"`
	PointsMarket           int64 `json:"points_market"`
	PointsAverageCost      int64 `json:"points_averagecost"`
	PointsBought           int64 `json:"points_bought"`
	TotalPointsBought      int64 `json:"total_points_boughttotal"`
	TotalItemsSent         int64 `json:"total_items_sent"`
	TotalTrades            int64 `json:"total_trades"`
	TotalItemsBazaarIncome int64 `json:"total_items_bazaarincome"`
	TotalItemsCityFinds    int64 `json:"total_items_cityfinds"`
	TotalItemsDumpFinds    int64 `json:"total_items_dumpfinds"`
	TotalItemsDumped       int64 `json:"total_items_dumped"`
	TotalMeritsBought      int64 `json:"total_merits_bought"`
	TotalRefillsBought     int64 `json:"total_refills_bought"`

	// Crime and jail
	Crimes          int64 `json:"crimes"`
	Jailed          int64 `json:"jailed"`
	TotalJailJailed int64 `json:"total_jail_jailed"`
	TotalJailBusted int64 `json:"total_jail_busted"`
	TotalJailBusts  int64 `json:"total_jail_busts"`
	TotalJailBailed int64 `json:"total_jail_bailed"`

	// Combat
	TotalAttacksWon          int64 `json:"total_attacks_won"`
	TotalAttacksLost         int64 `json:"total_attacks_lost"`
	TotalAttacksStalemated   int64 `json:"total_attacks_stalemated"`
	TotalAttacksRunaway      int64 `json:"total_attacks_runaway"`
	TotalAttacksHits         int64 `json:"total_attacks_hits"`
	TotalAttacksMisses       int64 `json:"total_attacks_misses"`
	TotalAttacksCriticalHits int64 `json:"total_attacks_criticalhits"`
	TotalAttacksRoundsFired  int64 `json:"total_attacks_roundsfired"`
	TotalAttacksStealthed    int64 `json:"total_attacks_stealthed"`
	TotalAttacksMoneyMugged  int64 `json:"total_attacks_moneymugged"`
	TotalAttacksRespect      int64 `json:"total_attacks_respectgained"`

	// Hospital
	TotalHospitalTrips   int64 `json:"total_hospital_trips"`
	TotalHospitalRevived int64 `json:"total_hospital_revived"`

	// Travel
	TotalTravelAll           int64 `json:"total_travel_all"`
	TotalTravelArgentina     int64 `json:"total_travel_argentina"`
	TotalTravelMexico        int64 `json:"total_travel_mexico"`
	TotalTravelDubai         int64 `json:"total_travel_dubai"`
	TotalTravelHawaii        int64 `json:"total_travel_hawaii"`
	TotalTravelJapan         int64 `json:"total_travel_japan"`
	TotalTravelUK            int64 `json:"total_travel_unitedkingdom"`
	TotalTravelSouthAfrica   int64 `json:"total_travel_southafrica"`
	TotalTravelSwitzerland   int64 `json:"total_travel_switzerland"`
	TotalTravelChina         int64 `json:"total_travel_china"`
	TotalTravelCanada        int64 `json:"total_travel_canada"`
	TotalTravelCaymanIslands int64 `json:"total_travel_caymanislands"`

	// Drugs
	TotalDrugsUsed      int64 `json:"total_drugs_used"`
	TotalDrugsOverdosed int64 `json:"total_drugs_overdosed"`
	TotalDrugsCannabis  int64 `json:"total_drugs_cannabis"`
	TotalDrugsEcstacy   int64 `json:"total_drugs_ecstacy"`
	TotalDrugsKetamine  int64 `json:"total_drugs_ketamine"`
	TotalDrugsLSD       int64 `json:"total_drugs_lsd"`
	TotalDrugsOpium     int64 `json:"total_drugs_opium"`
	TotalDrugsShrooms   int64 `json:"total_drugs_shrooms"`
	TotalDrugsSpeed     int64 `json:"total_drugs_speed"`
	TotalDrugsPCP       int64 `json:"total_drugs_pcp"`
	TotalDrugsXanax     int64 `json:"total_drugs_xanax"`
	TotalDrugsVicodin   int64 `json:"total_drugs_vicodin"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

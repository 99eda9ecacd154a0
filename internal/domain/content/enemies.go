package content

// UnitKind classifies a combatant for the material modifier table.
type UnitKind string

const (
	KindHuman    UnitKind = "human"
	KindMonster  UnitKind = "monster"
	KindEthereal UnitKind = "ethereal"
)

// ModifierPercent returns the damage multiplier, in integer percent, for
// an attack of the given material against the target kind.
func (m Material) ModifierPercent(target UnitKind) int {
	switch m {
	case MaterialSteel:
		switch target {
		case KindHuman:
			return 150
		case KindMonster:
			return 80
		case KindEthereal:
			return 0
		}
	case MaterialSilver:
		switch target {
		case KindHuman:
			return 70
		case KindMonster:
			return 200
		case KindEthereal:
			return 300
		}
	case MaterialFlesh:
		switch target {
		case KindHuman:
			return 120
		case KindMonster:
			return 120
		case KindEthereal:
			return 50
		}
	}
	return 100
}

// AbilityTrigger declares when an enemy ability fires during battle.
type AbilityTrigger string

const (
	// TriggerOnAttack applies the ability to the attack target.
	TriggerOnAttack AbilityTrigger = "on_attack"
	// TriggerOnDeath applies the ability to every living opponent once,
	// when the unit dies.
	TriggerOnDeath AbilityTrigger = "on_death"
)

// AbilityEffect is what a triggered ability does.
type AbilityEffect string

const (
	AbilityDamage AbilityEffect = "damage"
	AbilityHeal   AbilityEffect = "heal"
	AbilityStatus AbilityEffect = "status"
)

// AbilityDefinition is declarative: the effect resolver interprets it.
type AbilityDefinition struct {
	ID      string         `json:"id" yaml:"id"`
	Trigger AbilityTrigger `json:"trigger" yaml:"trigger"`
	Effect  AbilityEffect  `json:"effect" yaml:"effect"`
	Status  string         `json:"status,omitempty" yaml:"status,omitempty"`
	Amount  int            `json:"amount,omitempty" yaml:"amount,omitempty"`
	Rounds  int            `json:"rounds,omitempty" yaml:"rounds,omitempty"`
}

// EnemyDefinition is immutable reference data for opposing units.
type EnemyDefinition struct {
	ID        string              `json:"id" yaml:"id"`
	Name      string              `json:"name" yaml:"name"`
	Kind      UnitKind            `json:"kind" yaml:"kind"`
	Material  Material            `json:"material" yaml:"material"`
	MaxHP     int                 `json:"max_hp" yaml:"max_hp"`
	Attack    int                 `json:"attack" yaml:"attack"`
	Defense   int                 `json:"defense" yaml:"defense"`
	Speed     int                 `json:"speed" yaml:"speed"`
	Abilities []AbilityDefinition `json:"abilities,omitempty" yaml:"abilities,omitempty"`
}

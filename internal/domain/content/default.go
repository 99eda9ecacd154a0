package content

import "cursedwarden/internal/domain/shape"

// DefaultCatalog returns the built-in content tables. It mirrors the
// hand-authored item database the game ships with and backs tests and the
// headless tool; production deployments load the same structures from
// YAML through the static content provider.
func DefaultCatalog() Catalog {
	adjacentWeaponBuff := func(row, col int) SynergyDefinition {
		return SynergyDefinition{
			Offset:     shape.Cell{Row: row, Col: col},
			TargetTags: []Tag{TagWeapon},
			Effect:     EffectBuffTarget,
			Stat:       StatAttack,
			Value:      5,
			Group:      "whetstone_edge",
			Priority:   1,
		}
	}

	items := []ItemDefinition{
		{
			ID: "steel_sword", Name: "Steel Sword",
			Width: 1, Height: 2,
			Material: MaterialSteel, Rarity: RarityCommon, Price: 5,
			Tags:   []Tag{TagWeapon},
			Attack: 10,
		},
		{
			ID: "silver_dagger", Name: "Silver Dagger",
			Width: 1, Height: 1,
			Material: MaterialSilver, Rarity: RarityRare, Price: 7,
			Tags:   []Tag{TagWeapon},
			Attack: 8, Speed: 5,
		},
		{
			ID: "health_potion", Name: "Health Potion",
			Width: 1, Height: 1,
			Material: MaterialFlesh, Rarity: RarityCommon, Price: 3,
			Tags:   []Tag{TagPotion},
			Health: 10,
		},
		{
			ID: "whetstone", Name: "Whetstone",
			Width: 1, Height: 1,
			Material: MaterialSteel, Rarity: RarityCommon, Price: 4,
			Tags: []Tag{TagValuable},
			Synergy: []SynergyDefinition{
				adjacentWeaponBuff(0, 1),
				adjacentWeaponBuff(0, -1),
				adjacentWeaponBuff(1, 0),
				adjacentWeaponBuff(-1, 0),
			},
		},
		{
			ID: "epic_shield", Name: "Epic Shield",
			Width: 2, Height: 2,
			Material: MaterialSteel, Rarity: RarityEpic, Price: 12,
			Tags:   []Tag{TagWeapon},
			Attack: 2, Defense: 20, Speed: -2,
		},
		{
			ID: "legendary_bow", Name: "Legendary Bow",
			Width: 1, Height: 3,
			Material: MaterialFlesh, Rarity: RarityLegendary, Price: 25,
			Tags:   []Tag{TagWeapon},
			Attack: 15, Speed: 10,
		},
		{
			ID: "unique_charm", Name: "Unique Charm",
			Width: 1, Height: 1,
			Material: MaterialSilver, Rarity: RarityUnique, Price: 50,
			Tags: []Tag{TagValuable, TagMagic},
			Synergy: []SynergyDefinition{
				{
					TargetTags: []Tag{TagMagic},
					Effect:     EffectSetBonus,
					Stat:       StatSpeed,
					Value:      3,
				},
			},
		},
		{
			ID: "warden_cleaver", Name: "Warden's Cleaver",
			Cells: []shape.Cell{
				{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1},
			},
			Mirrored: true,
			Material: MaterialSteel, Rarity: RarityEpic, Price: 14,
			Tags:   []Tag{TagWeapon},
			Attack: 12, Defense: 2,
		},
		{
			ID: "ward_talisman", Name: "Ward Talisman",
			Width: 1, Height: 1,
			Material: MaterialSilver, Rarity: RarityRare, Price: 9,
			Tags: []Tag{TagMagic},
			Synergy: []SynergyDefinition{
				{
					TargetTags: []Tag{TagMagic},
					Effect:     EffectSetBonus,
					Stat:       StatDefense,
					Value:      2,
				},
			},
			Defense: 3,
		},
	}

	enemies := []EnemyDefinition{
		{
			ID: "slum_marauder", Name: "Slum Marauder",
			Kind: KindHuman, Material: MaterialSteel,
			MaxHP: 40, Attack: 8, Defense: 4, Speed: 7,
		},
		{
			ID: "gutter_ghoul", Name: "Gutter Ghoul",
			Kind: KindMonster, Material: MaterialFlesh,
			MaxHP: 55, Attack: 10, Defense: 2, Speed: 5,
			Abilities: []AbilityDefinition{
				{
					ID: "festering_bite", Trigger: TriggerOnAttack,
					Effect: AbilityStatus, Status: "poison", Amount: 2, Rounds: 3,
				},
			},
		},
		{
			ID: "hollow_wraith", Name: "Hollow Wraith",
			Kind: KindEthereal, Material: MaterialSilver,
			MaxHP: 30, Attack: 12, Defense: 0, Speed: 12,
			Abilities: []AbilityDefinition{
				{
					ID: "death_wail", Trigger: TriggerOnDeath,
					Effect: AbilityDamage, Amount: 6,
				},
			},
		},
	}

	cat, err := NewCatalog(items, enemies)
	if err != nil {
		// The built-in tables are static; a failure here is a programming
		// defect caught by the package tests.
		panic(err)
	}
	return cat
}

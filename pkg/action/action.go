package action

import (
	"fmt"
	"strconv"
	"strings"
)

// ID identifies an action function. The zero ID is the null pointer.
type ID uint16

// Kind tells which actor an action function runs against.
type Kind uint8

const (
	// KindNone is the kind of the null pointer.
	KindNone Kind = iota
	// KindMobj functions act on a map object.
	KindMobj
	// KindWeapon functions act on a player weapon sprite.
	KindWeapon
)

// Action function IDs, in engine declaration order.
const (
	None ID = iota
	Light0
	WeaponReady
	Lower
	Raise
	Punch
	ReFire
	FirePistol
	Light1
	FireShotgun
	Light2
	FireShotgun2
	CheckReload
	OpenShotgun2
	LoadShotgun2
	CloseShotgun2
	FireCGun
	GunFlash
	FireMissile
	Saw
	FirePlasma
	BFGsound
	FireBFG
	BFGSpray
	Explode
	Pain
	PlayerScream
	Fall
	XScream
	Look
	Chase
	FaceTarget
	PosAttack
	Scream
	SPosAttack
	VileChase
	VileStart
	VileTarget
	VileAttack
	StartFire
	Fire
	FireCrackle
	Tracer
	SkelWhoosh
	SkelFist
	SkelMissile
	FatRaise
	FatAttack1
	FatAttack2
	FatAttack3
	BossDeath
	CPosAttack
	CPosRefire
	TroopAttack
	SargAttack
	HeadAttack
	BruisAttack
	SkullAttack
	Metal
	SpidRefire
	BabyMetal
	BspiAttack
	Hoof
	CyberAttack
	PainAttack
	PainDie
	KeenDie
	BrainPain
	BrainScream
	BrainDie
	BrainAwake
	BrainSpit
	SpawnSound
	SpawnFly
	BrainExplode
	Detonate
	Mushroom
	Die
	Spawn
	Turn
	Face
	Scratch
	PlaySound
	RandomJump
	LineEffect
	FireOldBFG
	BetaSkullAttack
	Stop
	SpawnObject
	MonsterProjectile
	MonsterBulletAttack
	MonsterMeleeAttack
	RadiusDamage
	NoiseAlert
	HealChase
	SeekTracer
	FindTracer
	ClearTracer
	JumpIfHealthBelow
	JumpIfTargetInSight
	JumpIfTargetCloser
	JumpIfTracerInSight
	JumpIfTracerCloser
	JumpIfFlagsSet
	AddFlags
	RemoveFlags
	WeaponProjectile
	WeaponBulletAttack
	WeaponMeleeAttack
	WeaponSound
	WeaponAlert
	WeaponJump
	ConsumeAmmo
	CheckAmmo
	RefireTo
	GunFlashTo
	SpawnObjectNamed
	MonsterProjectileNamed
	WeaponProjectileNamed

	// Count is one past the last valid ID.
	Count
)

type info struct {
	name string
	kind Kind
}

var infos = [Count]info{
	None:                   {"NULL", KindNone},
	Light0:                 {"A_Light0", KindWeapon},
	WeaponReady:            {"A_WeaponReady", KindWeapon},
	Lower:                  {"A_Lower", KindWeapon},
	Raise:                  {"A_Raise", KindWeapon},
	Punch:                  {"A_Punch", KindWeapon},
	ReFire:                 {"A_ReFire", KindWeapon},
	FirePistol:             {"A_FirePistol", KindWeapon},
	Light1:                 {"A_Light1", KindWeapon},
	FireShotgun:            {"A_FireShotgun", KindWeapon},
	Light2:                 {"A_Light2", KindWeapon},
	FireShotgun2:           {"A_FireShotgun2", KindWeapon},
	CheckReload:            {"A_CheckReload", KindWeapon},
	OpenShotgun2:           {"A_OpenShotgun2", KindWeapon},
	LoadShotgun2:           {"A_LoadShotgun2", KindWeapon},
	CloseShotgun2:          {"A_CloseShotgun2", KindWeapon},
	FireCGun:               {"A_FireCGun", KindWeapon},
	GunFlash:               {"A_GunFlash", KindWeapon},
	FireMissile:            {"A_FireMissile", KindWeapon},
	Saw:                    {"A_Saw", KindWeapon},
	FirePlasma:             {"A_FirePlasma", KindWeapon},
	BFGsound:               {"A_BFGsound", KindWeapon},
	FireBFG:                {"A_FireBFG", KindWeapon},
	BFGSpray:               {"A_BFGSpray", KindMobj},
	Explode:                {"A_Explode", KindMobj},
	Pain:                   {"A_Pain", KindMobj},
	PlayerScream:           {"A_PlayerScream", KindMobj},
	Fall:                   {"A_Fall", KindMobj},
	XScream:                {"A_XScream", KindMobj},
	Look:                   {"A_Look", KindMobj},
	Chase:                  {"A_Chase", KindMobj},
	FaceTarget:             {"A_FaceTarget", KindMobj},
	PosAttack:              {"A_PosAttack", KindMobj},
	Scream:                 {"A_Scream", KindMobj},
	SPosAttack:             {"A_SPosAttack", KindMobj},
	VileChase:              {"A_VileChase", KindMobj},
	VileStart:              {"A_VileStart", KindMobj},
	VileTarget:             {"A_VileTarget", KindMobj},
	VileAttack:             {"A_VileAttack", KindMobj},
	StartFire:              {"A_StartFire", KindMobj},
	Fire:                   {"A_Fire", KindMobj},
	FireCrackle:            {"A_FireCrackle", KindMobj},
	Tracer:                 {"A_Tracer", KindMobj},
	SkelWhoosh:             {"A_SkelWhoosh", KindMobj},
	SkelFist:               {"A_SkelFist", KindMobj},
	SkelMissile:            {"A_SkelMissile", KindMobj},
	FatRaise:               {"A_FatRaise", KindMobj},
	FatAttack1:             {"A_FatAttack1", KindMobj},
	FatAttack2:             {"A_FatAttack2", KindMobj},
	FatAttack3:             {"A_FatAttack3", KindMobj},
	BossDeath:              {"A_BossDeath", KindMobj},
	CPosAttack:             {"A_CPosAttack", KindMobj},
	CPosRefire:             {"A_CPosRefire", KindMobj},
	TroopAttack:            {"A_TroopAttack", KindMobj},
	SargAttack:             {"A_SargAttack", KindMobj},
	HeadAttack:             {"A_HeadAttack", KindMobj},
	BruisAttack:            {"A_BruisAttack", KindMobj},
	SkullAttack:            {"A_SkullAttack", KindMobj},
	Metal:                  {"A_Metal", KindMobj},
	SpidRefire:             {"A_SpidRefire", KindMobj},
	BabyMetal:              {"A_BabyMetal", KindMobj},
	BspiAttack:             {"A_BspiAttack", KindMobj},
	Hoof:                   {"A_Hoof", KindMobj},
	CyberAttack:            {"A_CyberAttack", KindMobj},
	PainAttack:             {"A_PainAttack", KindMobj},
	PainDie:                {"A_PainDie", KindMobj},
	KeenDie:                {"A_KeenDie", KindMobj},
	BrainPain:              {"A_BrainPain", KindMobj},
	BrainScream:            {"A_BrainScream", KindMobj},
	BrainDie:               {"A_BrainDie", KindMobj},
	BrainAwake:             {"A_BrainAwake", KindMobj},
	BrainSpit:              {"A_BrainSpit", KindMobj},
	SpawnSound:             {"A_SpawnSound", KindMobj},
	SpawnFly:               {"A_SpawnFly", KindMobj},
	BrainExplode:           {"A_BrainExplode", KindMobj},
	Detonate:               {"A_Detonate", KindMobj},
	Mushroom:               {"A_Mushroom", KindMobj},
	Die:                    {"A_Die", KindMobj},
	Spawn:                  {"A_Spawn", KindMobj},
	Turn:                   {"A_Turn", KindMobj},
	Face:                   {"A_Face", KindMobj},
	Scratch:                {"A_Scratch", KindMobj},
	PlaySound:              {"A_PlaySound", KindMobj},
	RandomJump:             {"A_RandomJump", KindMobj},
	LineEffect:             {"A_LineEffect", KindMobj},
	FireOldBFG:             {"A_FireOldBFG", KindWeapon},
	BetaSkullAttack:        {"A_BetaSkullAttack", KindMobj},
	Stop:                   {"A_Stop", KindMobj},
	SpawnObject:            {"A_SpawnObject", KindMobj},
	MonsterProjectile:      {"A_MonsterProjectile", KindMobj},
	MonsterBulletAttack:    {"A_MonsterBulletAttack", KindMobj},
	MonsterMeleeAttack:     {"A_MonsterMeleeAttack", KindMobj},
	RadiusDamage:           {"A_RadiusDamage", KindMobj},
	NoiseAlert:             {"A_NoiseAlert", KindMobj},
	HealChase:              {"A_HealChase", KindMobj},
	SeekTracer:             {"A_SeekTracer", KindMobj},
	FindTracer:             {"A_FindTracer", KindMobj},
	ClearTracer:            {"A_ClearTracer", KindMobj},
	JumpIfHealthBelow:      {"A_JumpIfHealthBelow", KindMobj},
	JumpIfTargetInSight:    {"A_JumpIfTargetInSight", KindMobj},
	JumpIfTargetCloser:     {"A_JumpIfTargetCloser", KindMobj},
	JumpIfTracerInSight:    {"A_JumpIfTracerInSight", KindMobj},
	JumpIfTracerCloser:     {"A_JumpIfTracerCloser", KindMobj},
	JumpIfFlagsSet:         {"A_JumpIfFlagsSet", KindMobj},
	AddFlags:               {"A_AddFlags", KindMobj},
	RemoveFlags:            {"A_RemoveFlags", KindMobj},
	WeaponProjectile:       {"A_WeaponProjectile", KindWeapon},
	WeaponBulletAttack:     {"A_WeaponBulletAttack", KindWeapon},
	WeaponMeleeAttack:      {"A_WeaponMeleeAttack", KindWeapon},
	WeaponSound:            {"A_WeaponSound", KindWeapon},
	WeaponAlert:            {"A_WeaponAlert", KindWeapon},
	WeaponJump:             {"A_WeaponJump", KindWeapon},
	ConsumeAmmo:            {"A_ConsumeAmmo", KindWeapon},
	CheckAmmo:              {"A_CheckAmmo", KindWeapon},
	RefireTo:               {"A_RefireTo", KindWeapon},
	GunFlashTo:             {"A_GunFlashTo", KindWeapon},
	SpawnObjectNamed:       {"A_SpawnObjectNamed", KindMobj},
	MonsterProjectileNamed: {"A_MonsterProjectileNamed", KindMobj},
	WeaponProjectileNamed:  {"A_WeaponProjectileNamed", KindWeapon},
}

var byMnemonic = func() map[string]ID {
	m := make(map[string]ID, Count)
	for id := None + 1; id < Count; id++ {
		m[strings.ToLower(infos[id].name[2:])] = id
	}
	return m
}()

// Valid reports whether id names a known action function or the null pointer.
func (id ID) Valid() bool { return id < Count }

// String returns the engine name of the action function, "A_" prefix included.
func (id ID) String() string {
	if !id.Valid() {
		return "A_Unknown"
	}
	return infos[id].name
}

// Kind returns the actor kind the function runs against.
func (id ID) Kind() Kind {
	if !id.Valid() {
		return KindNone
	}
	return infos[id].kind
}

// TakesNameIndex reports whether the function's type argument is a name
// index from the object-type name registry rather than a type index.
func (id ID) TakesNameIndex() bool {
	switch id {
	case SpawnObjectNamed, MonsterProjectileNamed, WeaponProjectileNamed:
		return true
	}
	return false
}

// Lookup resolves a code pointer mnemonic. The "A_" prefix is optional and
// case is ignored. "NULL" resolves to None.
func Lookup(mnemonic string) (ID, bool) {
	key := strings.ToLower(mnemonic)
	if key == "null" {
		return None, true
	}
	key = strings.TrimPrefix(key, "a_")
	id, ok := byMnemonic[key]
	return id, ok
}

func (k Kind) String() string {
	switch k {
	case KindMobj:
		return "mobj"
	case KindWeapon:
		return "weapon"
	default:
		return "none"
	}
}

// MarshalText encodes the ID as its engine name.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText accepts a mnemonic or a decimal ID.
func (id *ID) UnmarshalText(text []byte) error {
	if v, ok := Lookup(string(text)); ok {
		*id = v
		return nil
	}
	n, err := strconv.ParseUint(string(text), 10, 16)
	if err != nil || !ID(n).Valid() {
		return fmt.Errorf("action: unknown code pointer %q", text)
	}
	*id = ID(n)
	return nil
}

package kernel

type UserID string

func NewUserID(id string) UserID { return UserID(id) }
func (u UserID) String() string  { return string(u) }
func (u UserID) IsEmpty() bool   { return string(u) == "" }

type AspiranteID string

func NewAspiranteID(id string) AspiranteID { return AspiranteID(id) }
func (a AspiranteID) String() string       { return string(a) }
func (a AspiranteID) IsEmpty() bool        { return string(a) == "" }

type ConvocatoriaID string

func NewConvocatoriaID(id string) ConvocatoriaID { return ConvocatoriaID(id) }
func (c ConvocatoriaID) String() string          { return string(c) }
func (c ConvocatoriaID) IsEmpty() bool           { return string(c) == "" }

type ContratacionID string

func NewContratacionID(id string) ContratacionID { return ContratacionID(id) }
func (c ContratacionID) String() string          { return string(c) }
func (c ContratacionID) IsEmpty() bool           { return string(c) == "" }

type ExpedienteID string

func NewExpedienteID(id string) ExpedienteID { return ExpedienteID(id) }
func (e ExpedienteID) String() string        { return string(e) }
func (e ExpedienteID) IsEmpty() bool         { return string(e) == "" }

package wire

import "fmt"

// ServiceType identifies the kind of a service.
type ServiceType int32

const (
	ServiceTypeInvalid ServiceType = iota
	ServiceTypeAccessoryInformation
	ServiceTypeFan
	ServiceTypeGarageDoorOpener
	ServiceTypeLightBulb
	ServiceTypeLockManagement
	ServiceTypeLockMechanism
	ServiceTypeOutlet
	ServiceTypeSwitch
	ServiceTypeThermostat
	ServiceTypeSecuritySystem
	ServiceTypeCarbonMonoxideSensor
	ServiceTypeContactSensor
	ServiceTypeDoor
	ServiceTypeHumiditySensor
	ServiceTypeLeakSensor
	ServiceTypeLightSensor
	ServiceTypeMotionSensor
	ServiceTypeOccupancySensor
	ServiceTypeSmokeSensor
	ServiceTypeStatefulProgrammableSwitch
	ServiceTypeStatelessProgrammableSwitch
	ServiceTypeTemperatureSensor
	ServiceTypeWindow
	ServiceTypeWindowCovering
	ServiceTypeAirQualitySensor
	ServiceTypeBattery
	ServiceTypeCarbonDioxideSensor
	ServiceTypeCameraRTPStreamManagement
	ServiceTypeCameraControl
	ServiceTypeMicrophone
	ServiceTypeSpeaker
	ServiceTypeDoorbell
	ServiceTypeVentilationFan
	ServiceTypeSlats
	ServiceTypeFilterMaintenance
	ServiceTypeAirPurifier
	ServiceTypeHeaterCooler
	ServiceTypeHumidifierDehumidifier
	ServiceTypeLabel
	ServiceTypeIrrigationSystem
	ServiceTypeValve
	ServiceTypeFaucet
	ServiceTypeTelevision
	ServiceTypeInputSource
)

var serviceTypeNames = [...]string{
	ServiceTypeInvalid:                     "InvalidServiceType",
	ServiceTypeAccessoryInformation:        "AccessoryInformation",
	ServiceTypeFan:                         "Fan",
	ServiceTypeGarageDoorOpener:            "GarageDoorOpener",
	ServiceTypeLightBulb:                   "LightBulb",
	ServiceTypeLockManagement:              "LockManagement",
	ServiceTypeLockMechanism:               "LockMechanism",
	ServiceTypeOutlet:                      "Outlet",
	ServiceTypeSwitch:                      "Switch",
	ServiceTypeThermostat:                  "Thermostat",
	ServiceTypeSecuritySystem:              "SecuritySystem",
	ServiceTypeCarbonMonoxideSensor:        "CarbonMonoxideSensor",
	ServiceTypeContactSensor:               "ContactSensor",
	ServiceTypeDoor:                        "Door",
	ServiceTypeHumiditySensor:              "HumiditySensor",
	ServiceTypeLeakSensor:                  "LeakSensor",
	ServiceTypeLightSensor:                 "LightSensor",
	ServiceTypeMotionSensor:                "MotionSensor",
	ServiceTypeOccupancySensor:             "OccupancySensor",
	ServiceTypeSmokeSensor:                 "SmokeSensor",
	ServiceTypeStatefulProgrammableSwitch:  "StatefulProgrammableSwitch",
	ServiceTypeStatelessProgrammableSwitch: "StatelessProgrammableSwitch",
	ServiceTypeTemperatureSensor:           "TemperatureSensor",
	ServiceTypeWindow:                      "Window",
	ServiceTypeWindowCovering:              "WindowCovering",
	ServiceTypeAirQualitySensor:            "AirQualitySensor",
	ServiceTypeBattery:                     "Battery",
	ServiceTypeCarbonDioxideSensor:         "CarbonDioxideSensor",
	ServiceTypeCameraRTPStreamManagement:   "CameraRTPStreamManagement",
	ServiceTypeCameraControl:               "CameraControl",
	ServiceTypeMicrophone:                  "Microphone",
	ServiceTypeSpeaker:                     "Speaker",
	ServiceTypeDoorbell:                    "Doorbell",
	ServiceTypeVentilationFan:              "VentilationFan",
	ServiceTypeSlats:                       "Slats",
	ServiceTypeFilterMaintenance:           "FilterMaintenance",
	ServiceTypeAirPurifier:                 "AirPurifier",
	ServiceTypeHeaterCooler:                "HeaterCooler",
	ServiceTypeHumidifierDehumidifier:      "HumidifierDehumidifier",
	ServiceTypeLabel:                       "Label",
	ServiceTypeIrrigationSystem:            "IrrigationSystem",
	ServiceTypeValve:                       "Valve",
	ServiceTypeFaucet:                      "Faucet",
	ServiceTypeTelevision:                  "Television",
	ServiceTypeInputSource:                 "InputSource",
}

func (s ServiceType) String() string { return enumString(serviceTypeNames[:], int(s)) }

// MarshalText encodes the value by name.
func (s ServiceType) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText accepts a name or a decimal value.
func (s *ServiceType) UnmarshalText(b []byte) error {
	v, err := parseEnum(serviceTypeNames[:], string(b))
	if err != nil {
		return fmt.Errorf("service type: %w", err)
	}
	*s = ServiceType(v)
	return nil
}

// CharacteristicType identifies the kind of a characteristic.
type CharacteristicType int32

const (
	CharacteristicTypeInvalid CharacteristicType = iota
	CharacteristicTypeAdminOnlyAccess
	CharacteristicTypeAudioFeedback
	CharacteristicTypeBrightness
	CharacteristicTypeCoolingThreshold
	CharacteristicTypeCurrentDoorState
	CharacteristicTypeCurrentHeatingCooling
	CharacteristicTypeCurrentRelativeHumidity
	CharacteristicTypeCurrentTemperature
	CharacteristicTypeHeatingThreshold
	CharacteristicTypeHue
	CharacteristicTypeIdentify
	CharacteristicTypeLockManagementControlPoint
	CharacteristicTypeLockManagementAutoSecureTimeout
	CharacteristicTypeLockLastKnownAction
	CharacteristicTypeCurrentLockMechanismState
	CharacteristicTypeTargetLockMechanismState
	CharacteristicTypeLogs
	CharacteristicTypeManufacturer
	CharacteristicTypeModel
	CharacteristicTypeMotionDetected
	CharacteristicTypeName
	CharacteristicTypeObstructionDetected
	CharacteristicTypePowerState
	CharacteristicTypeOutletInUse
	CharacteristicTypeRotationDirection
	CharacteristicTypeRotationSpeed
	CharacteristicTypeSaturation
	CharacteristicTypeSerialNumber
	CharacteristicTypeTargetDoorState
	CharacteristicTypeTargetHeatingCooling
	CharacteristicTypeTargetRelativeHumidity
	CharacteristicTypeTargetTemperature
	CharacteristicTypeTemperatureUnits
	CharacteristicTypeVersion
	CharacteristicTypeFirmwareVersion
	CharacteristicTypeHardwareVersion
	CharacteristicTypeSoftwareVersion
	CharacteristicTypeAirParticulateDensity
	CharacteristicTypeAirParticulateSize
	CharacteristicTypeCurrentSecuritySystemState
	CharacteristicTypeTargetSecuritySystemState
	CharacteristicTypeBatteryLevel
	CharacteristicTypeCarbonMonoxideDetected
	CharacteristicTypeContactState
	CharacteristicTypeCurrentLightLevel
	CharacteristicTypeCurrentHorizontalTilt
	CharacteristicTypeCurrentPosition
	CharacteristicTypeCurrentVerticalTilt
	CharacteristicTypeHoldPosition
	CharacteristicTypeLeakDetected
	CharacteristicTypeOccupancyDetected
	CharacteristicTypePositionState
	CharacteristicTypeInputEvent
	CharacteristicTypeStatusActive
	CharacteristicTypeSmokeDetected
	CharacteristicTypeStatusFault
	CharacteristicTypeStatusJammed
	CharacteristicTypeStatusLowBattery
	CharacteristicTypeStatusTampered
	CharacteristicTypeTargetHorizontalTilt
	CharacteristicTypeTargetPosition
	CharacteristicTypeTargetVerticalTilt
	CharacteristicTypeSecuritySystemAlarmType
	CharacteristicTypeChargingState
	CharacteristicTypeCarbonMonoxideLevel
	CharacteristicTypeCarbonMonoxidePeakLevel
	CharacteristicTypeCarbonDioxideDetected
	CharacteristicTypeCarbonDioxideLevel
	CharacteristicTypeCarbonDioxidePeakLevel
	CharacteristicTypeAirQuality
	CharacteristicTypeAccessoryFlags
	CharacteristicTypeLockPhysicalControls
	CharacteristicTypeTargetAirPurifierState
	CharacteristicTypeCurrentAirPurifierState
	CharacteristicTypeCurrentSlatState
	CharacteristicTypeFilterLifeLevel
	CharacteristicTypeFilterChangeIndication
	CharacteristicTypeFilterResetChangeIndication
	CharacteristicTypeCurrentFanState
	CharacteristicTypeActive
	CharacteristicTypeCurrentHeaterCoolerState
	CharacteristicTypeTargetHeaterCoolerState
	CharacteristicTypeCurrentHumidifierDehumidifierState
	CharacteristicTypeTargetHumidifierDehumidifierState
	CharacteristicTypeWaterLevel
	CharacteristicTypeSwingMode
	CharacteristicTypeTargetFanState
	CharacteristicTypeSlatType
	CharacteristicTypeCurrentTilt
	CharacteristicTypeTargetTilt
	CharacteristicTypeOzoneDensity
	CharacteristicTypeNitrogenDioxideDensity
	CharacteristicTypeSulphurDioxideDensity
	CharacteristicTypePM25Density
	CharacteristicTypePM10Density
	CharacteristicTypeVolatileOrganicCompoundDensity
	CharacteristicTypeDehumidifierThreshold
	CharacteristicTypeHumidifierThreshold
	CharacteristicTypeLabelIndex
	CharacteristicTypeLabelNamespace
	CharacteristicTypeColorTemperature
	CharacteristicTypeProgramMode
	CharacteristicTypeInUse
	CharacteristicTypeSetDuration
	CharacteristicTypeRemainingDuration
	CharacteristicTypeValveType
	CharacteristicTypeIsConfigured
	CharacteristicTypeInputSourceType
	CharacteristicTypeInputDeviceType
	CharacteristicTypeClosedCaptions
	CharacteristicTypePowerModeSelection
	CharacteristicTypeCurrentMediaState
	CharacteristicTypeRemoteKey
	CharacteristicTypePictureMode
	CharacteristicTypeConfiguredName
	CharacteristicTypeIdentifier
	CharacteristicTypeActiveIdentifier
	CharacteristicTypeSleepDiscoveryMode
	CharacteristicTypeVolumeControlType
	CharacteristicTypeVolumeSelector
	CharacteristicTypeSupportedVideoStreamConfiguration
	CharacteristicTypeSupportedAudioStreamConfiguration
	CharacteristicTypeSupportedRTPConfiguration
	CharacteristicTypeSelectedStreamConfiguration
	CharacteristicTypeSetupStreamEndpoint
	CharacteristicTypeVolume
	CharacteristicTypeMute
	CharacteristicTypeNightVision
	CharacteristicTypeOpticalZoom
	CharacteristicTypeDigitalZoom
	CharacteristicTypeImageRotation
	CharacteristicTypeImageMirroring
	CharacteristicTypeStreamingStatus
	CharacteristicTypeSupportedTargetConfiguration
	CharacteristicTypeTargetList
	CharacteristicTypeButtonEvent
	CharacteristicTypeSelectedAudioStreamConfiguration
	CharacteristicTypeSupportedDataStreamTransportConfiguration
	CharacteristicTypeSetupDataStreamTransport
	CharacteristicTypeSiriInputType
	CharacteristicTypeTargetVisibilityState
	CharacteristicTypeCurrentVisibilityState
	CharacteristicTypeTargetMediaState
	CharacteristicTypeWiFiSatelliteStatus
	CharacteristicTypeProductData
)

var characteristicTypeNames = [...]string{
	CharacteristicTypeInvalid:                                   "InvalidCharacteristicType",
	CharacteristicTypeAdminOnlyAccess:                           "AdminOnlyAccess",
	CharacteristicTypeAudioFeedback:                             "AudioFeedback",
	CharacteristicTypeBrightness:                                "Brightness",
	CharacteristicTypeCoolingThreshold:                          "CoolingThreshold",
	CharacteristicTypeCurrentDoorState:                          "CurrentDoorState",
	CharacteristicTypeCurrentHeatingCooling:                     "CurrentHeatingCooling",
	CharacteristicTypeCurrentRelativeHumidity:                   "CurrentRelativeHumidity",
	CharacteristicTypeCurrentTemperature:                        "CurrentTemperature",
	CharacteristicTypeHeatingThreshold:                          "HeatingThreshold",
	CharacteristicTypeHue:                                       "Hue",
	CharacteristicTypeIdentify:                                  "Identify",
	CharacteristicTypeLockManagementControlPoint:                "LockManagementControlPoint",
	CharacteristicTypeLockManagementAutoSecureTimeout:           "LockManagementAutoSecureTimeout",
	CharacteristicTypeLockLastKnownAction:                       "LockLastKnownAction",
	CharacteristicTypeCurrentLockMechanismState:                 "CurrentLockMechanismState",
	CharacteristicTypeTargetLockMechanismState:                  "TargetLockMechanismState",
	CharacteristicTypeLogs:                                      "Logs",
	CharacteristicTypeManufacturer:                              "Manufacturer",
	CharacteristicTypeModel:                                     "Model",
	CharacteristicTypeMotionDetected:                            "MotionDetected",
	CharacteristicTypeName:                                      "Name",
	CharacteristicTypeObstructionDetected:                       "ObstructionDetected",
	CharacteristicTypePowerState:                                "PowerState",
	CharacteristicTypeOutletInUse:                               "OutletInUse",
	CharacteristicTypeRotationDirection:                         "RotationDirection",
	CharacteristicTypeRotationSpeed:                             "RotationSpeed",
	CharacteristicTypeSaturation:                                "Saturation",
	CharacteristicTypeSerialNumber:                              "SerialNumber",
	CharacteristicTypeTargetDoorState:                           "TargetDoorState",
	CharacteristicTypeTargetHeatingCooling:                      "TargetHeatingCooling",
	CharacteristicTypeTargetRelativeHumidity:                    "TargetRelativeHumidity",
	CharacteristicTypeTargetTemperature:                         "TargetTemperature",
	CharacteristicTypeTemperatureUnits:                          "TemperatureUnits",
	CharacteristicTypeVersion:                                   "Version",
	CharacteristicTypeFirmwareVersion:                           "FirmwareVersion",
	CharacteristicTypeHardwareVersion:                           "HardwareVersion",
	CharacteristicTypeSoftwareVersion:                           "SoftwareVersion",
	CharacteristicTypeAirParticulateDensity:                     "AirParticulateDensity",
	CharacteristicTypeAirParticulateSize:                        "AirParticulateSize",
	CharacteristicTypeCurrentSecuritySystemState:                "CurrentSecuritySystemState",
	CharacteristicTypeTargetSecuritySystemState:                 "TargetSecuritySystemState",
	CharacteristicTypeBatteryLevel:                              "BatteryLevel",
	CharacteristicTypeCarbonMonoxideDetected:                    "CarbonMonoxideDetected",
	CharacteristicTypeContactState:                              "ContactState",
	CharacteristicTypeCurrentLightLevel:                         "CurrentLightLevel",
	CharacteristicTypeCurrentHorizontalTilt:                     "CurrentHorizontalTilt",
	CharacteristicTypeCurrentPosition:                           "CurrentPosition",
	CharacteristicTypeCurrentVerticalTilt:                       "CurrentVerticalTilt",
	CharacteristicTypeHoldPosition:                              "HoldPosition",
	CharacteristicTypeLeakDetected:                              "LeakDetected",
	CharacteristicTypeOccupancyDetected:                         "OccupancyDetected",
	CharacteristicTypePositionState:                             "PositionState",
	CharacteristicTypeInputEvent:                                "InputEvent",
	CharacteristicTypeStatusActive:                              "StatusActive",
	CharacteristicTypeSmokeDetected:                             "SmokeDetected",
	CharacteristicTypeStatusFault:                               "StatusFault",
	CharacteristicTypeStatusJammed:                              "StatusJammed",
	CharacteristicTypeStatusLowBattery:                          "StatusLowBattery",
	CharacteristicTypeStatusTampered:                            "StatusTampered",
	CharacteristicTypeTargetHorizontalTilt:                      "TargetHorizontalTilt",
	CharacteristicTypeTargetPosition:                            "TargetPosition",
	CharacteristicTypeTargetVerticalTilt:                        "TargetVerticalTilt",
	CharacteristicTypeSecuritySystemAlarmType:                   "SecuritySystemAlarmType",
	CharacteristicTypeChargingState:                             "ChargingState",
	CharacteristicTypeCarbonMonoxideLevel:                       "CarbonMonoxideLevel",
	CharacteristicTypeCarbonMonoxidePeakLevel:                   "CarbonMonoxidePeakLevel",
	CharacteristicTypeCarbonDioxideDetected:                     "CarbonDioxideDetected",
	CharacteristicTypeCarbonDioxideLevel:                        "CarbonDioxideLevel",
	CharacteristicTypeCarbonDioxidePeakLevel:                    "CarbonDioxidePeakLevel",
	CharacteristicTypeAirQuality:                                "AirQuality",
	CharacteristicTypeAccessoryFlags:                            "AccessoryFlags",
	CharacteristicTypeLockPhysicalControls:                      "LockPhysicalControls",
	CharacteristicTypeTargetAirPurifierState:                    "TargetAirPurifierState",
	CharacteristicTypeCurrentAirPurifierState:                   "CurrentAirPurifierState",
	CharacteristicTypeCurrentSlatState:                          "CurrentSlatState",
	CharacteristicTypeFilterLifeLevel:                           "FilterLifeLevel",
	CharacteristicTypeFilterChangeIndication:                    "FilterChangeIndication",
	CharacteristicTypeFilterResetChangeIndication:               "FilterResetChangeIndication",
	CharacteristicTypeCurrentFanState:                           "CurrentFanState",
	CharacteristicTypeActive:                                    "Active",
	CharacteristicTypeCurrentHeaterCoolerState:                  "CurrentHeaterCoolerState",
	CharacteristicTypeTargetHeaterCoolerState:                   "TargetHeaterCoolerState",
	CharacteristicTypeCurrentHumidifierDehumidifierState:        "CurrentHumidifierDehumidifierState",
	CharacteristicTypeTargetHumidifierDehumidifierState:         "TargetHumidifierDehumidifierState",
	CharacteristicTypeWaterLevel:                                "WaterLevel",
	CharacteristicTypeSwingMode:                                 "SwingMode",
	CharacteristicTypeTargetFanState:                            "TargetFanState",
	CharacteristicTypeSlatType:                                  "SlatType",
	CharacteristicTypeCurrentTilt:                               "CurrentTilt",
	CharacteristicTypeTargetTilt:                                "TargetTilt",
	CharacteristicTypeOzoneDensity:                              "OzoneDensity",
	CharacteristicTypeNitrogenDioxideDensity:                    "NitrogenDioxideDensity",
	CharacteristicTypeSulphurDioxideDensity:                     "SulphurDioxideDensity",
	CharacteristicTypePM25Density:                               "PM25Density",
	CharacteristicTypePM10Density:                               "PM10Density",
	CharacteristicTypeVolatileOrganicCompoundDensity:            "VolatileOrganicCompoundDensity",
	CharacteristicTypeDehumidifierThreshold:                     "DehumidifierThreshold",
	CharacteristicTypeHumidifierThreshold:                       "HumidifierThreshold",
	CharacteristicTypeLabelIndex:                                "LabelIndex",
	CharacteristicTypeLabelNamespace:                            "LabelNamespace",
	CharacteristicTypeColorTemperature:                          "ColorTemperature",
	CharacteristicTypeProgramMode:                               "ProgramMode",
	CharacteristicTypeInUse:                                     "InUse",
	CharacteristicTypeSetDuration:                               "SetDuration",
	CharacteristicTypeRemainingDuration:                         "RemainingDuration",
	CharacteristicTypeValveType:                                 "ValveType",
	CharacteristicTypeIsConfigured:                              "IsConfigured",
	CharacteristicTypeInputSourceType:                           "InputSourceType",
	CharacteristicTypeInputDeviceType:                           "InputDeviceType",
	CharacteristicTypeClosedCaptions:                            "ClosedCaptions",
	CharacteristicTypePowerModeSelection:                        "PowerModeSelection",
	CharacteristicTypeCurrentMediaState:                         "CurrentMediaState",
	CharacteristicTypeRemoteKey:                                 "RemoteKey",
	CharacteristicTypePictureMode:                               "PictureMode",
	CharacteristicTypeConfiguredName:                            "ConfiguredName",
	CharacteristicTypeIdentifier:                                "Identifier",
	CharacteristicTypeActiveIdentifier:                          "ActiveIdentifier",
	CharacteristicTypeSleepDiscoveryMode:                        "SleepDiscoveryMode",
	CharacteristicTypeVolumeControlType:                         "VolumeControlType",
	CharacteristicTypeVolumeSelector:                            "VolumeSelector",
	CharacteristicTypeSupportedVideoStreamConfiguration:         "SupportedVideoStreamConfiguration",
	CharacteristicTypeSupportedAudioStreamConfiguration:         "SupportedAudioStreamConfiguration",
	CharacteristicTypeSupportedRTPConfiguration:                 "SupportedRTPConfiguration",
	CharacteristicTypeSelectedStreamConfiguration:               "SelectedStreamConfiguration",
	CharacteristicTypeSetupStreamEndpoint:                       "SetupStreamEndpoint",
	CharacteristicTypeVolume:                                    "Volume",
	CharacteristicTypeMute:                                      "Mute",
	CharacteristicTypeNightVision:                               "NightVision",
	CharacteristicTypeOpticalZoom:                               "OpticalZoom",
	CharacteristicTypeDigitalZoom:                               "DigitalZoom",
	CharacteristicTypeImageRotation:                             "ImageRotation",
	CharacteristicTypeImageMirroring:                            "ImageMirroring",
	CharacteristicTypeStreamingStatus:                           "StreamingStatus",
	CharacteristicTypeSupportedTargetConfiguration:              "SupportedTargetConfiguration",
	CharacteristicTypeTargetList:                                "TargetList",
	CharacteristicTypeButtonEvent:                               "ButtonEvent",
	CharacteristicTypeSelectedAudioStreamConfiguration:          "SelectedAudioStreamConfiguration",
	CharacteristicTypeSupportedDataStreamTransportConfiguration: "SupportedDataStreamTransportConfiguration",
	CharacteristicTypeSetupDataStreamTransport:                  "SetupDataStreamTransport",
	CharacteristicTypeSiriInputType:                             "SiriInputType",
	CharacteristicTypeTargetVisibilityState:                     "TargetVisibilityState",
	CharacteristicTypeCurrentVisibilityState:                    "CurrentVisibilityState",
	CharacteristicTypeTargetMediaState:                          "TargetMediaState",
	CharacteristicTypeWiFiSatelliteStatus:                       "WiFiSatelliteStatus",
	CharacteristicTypeProductData:                               "ProductData",
}

func (c CharacteristicType) String() string { return enumString(characteristicTypeNames[:], int(c)) }

// MarshalText encodes the value by name.
func (c CharacteristicType) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText accepts a name or a decimal value.
func (c *CharacteristicType) UnmarshalText(b []byte) error {
	v, err := parseEnum(characteristicTypeNames[:], string(b))
	if err != nil {
		return fmt.Errorf("characteristic type: %w", err)
	}
	*c = CharacteristicType(v)
	return nil
}

// Category is an accessory category.
type Category int32

const (
	CategoryInvalid Category = iota
	CategoryOther
	CategorySecuritySystem
	CategoryBridge
	CategoryDoor
	CategoryDoorLock
	CategoryFan
	CategoryGarageDoorOpener
	CategoryIPCamera
	CategoryOutlet
	CategoryProgrammableSwitch
	CategoryRangeExtender
	CategorySensor
	CategorySwitch
	CategoryThermostat
	CategoryVideoDoorbell
	CategoryWindow
	CategoryWindowCovering
	CategoryAirPurifier
	CategoryAirHeater
	CategoryAirConditioner
	CategoryAirHumidifier
	CategoryAirDehumidifier
	CategorySprinkler
	CategoryFaucet
	CategoryShowerHead
	CategoryTelevision
	CategoryTelevisionSetTopBox
	CategoryTelevisionStreamingStick
	CategoryWiFiRouter
	CategoryLightbulb
)

var categoryNames = [...]string{
	CategoryInvalid:                  "InvalidCategory",
	CategoryOther:                    "Other",
	CategorySecuritySystem:           "SecuritySystem",
	CategoryBridge:                   "Bridge",
	CategoryDoor:                     "Door",
	CategoryDoorLock:                 "DoorLock",
	CategoryFan:                      "Fan",
	CategoryGarageDoorOpener:         "GarageDoorOpener",
	CategoryIPCamera:                 "IPCamera",
	CategoryOutlet:                   "Outlet",
	CategoryProgrammableSwitch:       "ProgrammableSwitch",
	CategoryRangeExtender:            "RangeExtender",
	CategorySensor:                   "Sensor",
	CategorySwitch:                   "Switch",
	CategoryThermostat:               "Thermostat",
	CategoryVideoDoorbell:            "VideoDoorbell",
	CategoryWindow:                   "Window",
	CategoryWindowCovering:           "WindowCovering",
	CategoryAirPurifier:              "AirPurifier",
	CategoryAirHeater:                "AirHeater",
	CategoryAirConditioner:           "AirConditioner",
	CategoryAirHumidifier:            "AirHumidifier",
	CategoryAirDehumidifier:          "AirDehumidifier",
	CategorySprinkler:                "Sprinkler",
	CategoryFaucet:                   "Faucet",
	CategoryShowerHead:               "ShowerHead",
	CategoryTelevision:               "Television",
	CategoryTelevisionSetTopBox:      "TelevisionSetTopBox",
	CategoryTelevisionStreamingStick: "TelevisionStreamingStick",
	CategoryWiFiRouter:               "WiFiRouter",
	CategoryLightbulb:                "Lightbulb",
}

func (c Category) String() string { return enumString(categoryNames[:], int(c)) }

// MarshalText encodes the value by name.
func (c Category) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText accepts a name or a decimal value.
func (c *Category) UnmarshalText(b []byte) error {
	v, err := parseEnum(categoryNames[:], string(b))
	if err != nil {
		return fmt.Errorf("category: %w", err)
	}
	*c = Category(v)
	return nil
}

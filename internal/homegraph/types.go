package homegraph

// Service type identifiers as reported by the home-automation framework.
const (
	ServiceTypeAccessoryInformation        = "0000003E-0000-1000-8000-0026BB765291"
	ServiceTypeFan                         = "00000040-0000-1000-8000-0026BB765291"
	ServiceTypeGarageDoorOpener            = "00000041-0000-1000-8000-0026BB765291"
	ServiceTypeLightBulb                   = "00000043-0000-1000-8000-0026BB765291"
	ServiceTypeLockManagement              = "00000044-0000-1000-8000-0026BB765291"
	ServiceTypeLockMechanism               = "00000045-0000-1000-8000-0026BB765291"
	ServiceTypeOutlet                      = "00000047-0000-1000-8000-0026BB765291"
	ServiceTypeSwitch                      = "00000049-0000-1000-8000-0026BB765291"
	ServiceTypeThermostat                  = "0000004A-0000-1000-8000-0026BB765291"
	ServiceTypeSecuritySystem              = "0000007E-0000-1000-8000-0026BB765291"
	ServiceTypeCarbonMonoxideSensor        = "0000007F-0000-1000-8000-0026BB765291"
	ServiceTypeContactSensor               = "00000080-0000-1000-8000-0026BB765291"
	ServiceTypeDoor                        = "00000081-0000-1000-8000-0026BB765291"
	ServiceTypeHumiditySensor              = "00000082-0000-1000-8000-0026BB765291"
	ServiceTypeLeakSensor                  = "00000083-0000-1000-8000-0026BB765291"
	ServiceTypeLightSensor                 = "00000084-0000-1000-8000-0026BB765291"
	ServiceTypeMotionSensor                = "00000085-0000-1000-8000-0026BB765291"
	ServiceTypeOccupancySensor             = "00000086-0000-1000-8000-0026BB765291"
	ServiceTypeSmokeSensor                 = "00000087-0000-1000-8000-0026BB765291"
	ServiceTypeStatefulProgrammableSwitch  = "00000088-0000-1000-8000-0026BB765291"
	ServiceTypeStatelessProgrammableSwitch = "00000089-0000-1000-8000-0026BB765291"
	ServiceTypeTemperatureSensor           = "0000008A-0000-1000-8000-0026BB765291"
	ServiceTypeWindow                      = "0000008B-0000-1000-8000-0026BB765291"
	ServiceTypeWindowCovering              = "0000008C-0000-1000-8000-0026BB765291"
	ServiceTypeAirQualitySensor            = "0000008D-0000-1000-8000-0026BB765291"
	ServiceTypeBattery                     = "00000096-0000-1000-8000-0026BB765291"
	ServiceTypeCarbonDioxideSensor         = "00000097-0000-1000-8000-0026BB765291"
	ServiceTypeCameraRTPStreamManagement   = "00000110-0000-1000-8000-0026BB765291"
	ServiceTypeCameraControl               = "00000111-0000-1000-8000-0026BB765291"
	ServiceTypeMicrophone                  = "00000112-0000-1000-8000-0026BB765291"
	ServiceTypeSpeaker                     = "00000113-0000-1000-8000-0026BB765291"
	ServiceTypeDoorbell                    = "00000121-0000-1000-8000-0026BB765291"
	ServiceTypeVentilationFan              = "000000B7-0000-1000-8000-0026BB765291"
	ServiceTypeSlats                       = "000000B9-0000-1000-8000-0026BB765291"
	ServiceTypeFilterMaintenance           = "000000BA-0000-1000-8000-0026BB765291"
	ServiceTypeAirPurifier                 = "000000BB-0000-1000-8000-0026BB765291"
	ServiceTypeHeaterCooler                = "000000BC-0000-1000-8000-0026BB765291"
	ServiceTypeHumidifierDehumidifier      = "000000BD-0000-1000-8000-0026BB765291"
	ServiceTypeLabel                       = "000000CC-0000-1000-8000-0026BB765291"
	ServiceTypeIrrigationSystem            = "000000CF-0000-1000-8000-0026BB765291"
	ServiceTypeValve                       = "000000D0-0000-1000-8000-0026BB765291"
	ServiceTypeFaucet                      = "000000D7-0000-1000-8000-0026BB765291"
	ServiceTypeTelevision                  = "000000D8-0000-1000-8000-0026BB765291"
	ServiceTypeInputSource                 = "000000D9-0000-1000-8000-0026BB765291"
)

// Characteristic type identifiers as reported by the home-automation framework.
const (
	CharacteristicTypeAdminOnlyAccess                           = "00000001-0000-1000-8000-0026BB765291"
	CharacteristicTypeAudioFeedback                             = "00000005-0000-1000-8000-0026BB765291"
	CharacteristicTypeBrightness                                = "00000008-0000-1000-8000-0026BB765291"
	CharacteristicTypeCoolingThreshold                          = "0000000D-0000-1000-8000-0026BB765291"
	CharacteristicTypeCurrentDoorState                          = "0000000E-0000-1000-8000-0026BB765291"
	CharacteristicTypeCurrentHeatingCooling                     = "0000000F-0000-1000-8000-0026BB765291"
	CharacteristicTypeCurrentRelativeHumidity                   = "00000010-0000-1000-8000-0026BB765291"
	CharacteristicTypeCurrentTemperature                        = "00000011-0000-1000-8000-0026BB765291"
	CharacteristicTypeHeatingThreshold                          = "00000012-0000-1000-8000-0026BB765291"
	CharacteristicTypeHue                                       = "00000013-0000-1000-8000-0026BB765291"
	CharacteristicTypeIdentify                                  = "00000014-0000-1000-8000-0026BB765291"
	CharacteristicTypeLockManagementControlPoint                = "00000019-0000-1000-8000-0026BB765291"
	CharacteristicTypeLockManagementAutoSecureTimeout           = "0000001A-0000-1000-8000-0026BB765291"
	CharacteristicTypeLockLastKnownAction                       = "0000001C-0000-1000-8000-0026BB765291"
	CharacteristicTypeCurrentLockMechanismState                 = "0000001D-0000-1000-8000-0026BB765291"
	CharacteristicTypeTargetLockMechanismState                  = "0000001E-0000-1000-8000-0026BB765291"
	CharacteristicTypeLogs                                      = "0000001F-0000-1000-8000-0026BB765291"
	CharacteristicTypeManufacturer                              = "00000020-0000-1000-8000-0026BB765291"
	CharacteristicTypeModel                                     = "00000021-0000-1000-8000-0026BB765291"
	CharacteristicTypeMotionDetected                            = "00000022-0000-1000-8000-0026BB765291"
	CharacteristicTypeName                                      = "00000023-0000-1000-8000-0026BB765291"
	CharacteristicTypeObstructionDetected                       = "00000024-0000-1000-8000-0026BB765291"
	CharacteristicTypePowerState                                = "00000025-0000-1000-8000-0026BB765291"
	CharacteristicTypeOutletInUse                               = "00000026-0000-1000-8000-0026BB765291"
	CharacteristicTypeRotationDirection                         = "00000028-0000-1000-8000-0026BB765291"
	CharacteristicTypeRotationSpeed                             = "00000029-0000-1000-8000-0026BB765291"
	CharacteristicTypeSaturation                                = "0000002F-0000-1000-8000-0026BB765291"
	CharacteristicTypeSerialNumber                              = "00000030-0000-1000-8000-0026BB765291"
	CharacteristicTypeTargetDoorState                           = "00000032-0000-1000-8000-0026BB765291"
	CharacteristicTypeTargetHeatingCooling                      = "00000033-0000-1000-8000-0026BB765291"
	CharacteristicTypeTargetRelativeHumidity                    = "00000034-0000-1000-8000-0026BB765291"
	CharacteristicTypeTargetTemperature                         = "00000035-0000-1000-8000-0026BB765291"
	CharacteristicTypeTemperatureUnits                          = "00000036-0000-1000-8000-0026BB765291"
	CharacteristicTypeVersion                                   = "00000037-0000-1000-8000-0026BB765291"
	CharacteristicTypeFirmwareVersion                           = "00000052-0000-1000-8000-0026BB765291"
	CharacteristicTypeHardwareVersion                           = "00000053-0000-1000-8000-0026BB765291"
	CharacteristicTypeSoftwareVersion                           = "00000054-0000-1000-8000-0026BB765291"
	CharacteristicTypeAirParticulateDensity                     = "00000064-0000-1000-8000-0026BB765291"
	CharacteristicTypeAirParticulateSize                        = "00000065-0000-1000-8000-0026BB765291"
	CharacteristicTypeCurrentSecuritySystemState                = "00000066-0000-1000-8000-0026BB765291"
	CharacteristicTypeTargetSecuritySystemState                 = "00000067-0000-1000-8000-0026BB765291"
	CharacteristicTypeBatteryLevel                              = "00000068-0000-1000-8000-0026BB765291"
	CharacteristicTypeCarbonMonoxideDetected                    = "00000069-0000-1000-8000-0026BB765291"
	CharacteristicTypeContactState                              = "0000006A-0000-1000-8000-0026BB765291"
	CharacteristicTypeCurrentLightLevel                         = "0000006B-0000-1000-8000-0026BB765291"
	CharacteristicTypeCurrentHorizontalTilt                     = "0000006C-0000-1000-8000-0026BB765291"
	CharacteristicTypeCurrentPosition                           = "0000006D-0000-1000-8000-0026BB765291"
	CharacteristicTypeCurrentVerticalTilt                       = "0000006E-0000-1000-8000-0026BB765291"
	CharacteristicTypeHoldPosition                              = "0000006F-0000-1000-8000-0026BB765291"
	CharacteristicTypeLeakDetected                              = "00000070-0000-1000-8000-0026BB765291"
	CharacteristicTypeOccupancyDetected                         = "00000071-0000-1000-8000-0026BB765291"
	CharacteristicTypePositionState                             = "00000072-0000-1000-8000-0026BB765291"
	CharacteristicTypeInputEvent                                = "00000073-0000-1000-8000-0026BB765291"
	CharacteristicTypeStatusActive                              = "00000075-0000-1000-8000-0026BB765291"
	CharacteristicTypeSmokeDetected                             = "00000076-0000-1000-8000-0026BB765291"
	CharacteristicTypeStatusFault                               = "00000077-0000-1000-8000-0026BB765291"
	CharacteristicTypeStatusJammed                              = "00000078-0000-1000-8000-0026BB765291"
	CharacteristicTypeStatusLowBattery                          = "00000079-0000-1000-8000-0026BB765291"
	CharacteristicTypeStatusTampered                            = "0000007A-0000-1000-8000-0026BB765291"
	CharacteristicTypeTargetHorizontalTilt                      = "0000007B-0000-1000-8000-0026BB765291"
	CharacteristicTypeTargetPosition                            = "0000007C-0000-1000-8000-0026BB765291"
	CharacteristicTypeTargetVerticalTilt                        = "0000007D-0000-1000-8000-0026BB765291"
	CharacteristicTypeSecuritySystemAlarmType                   = "0000008E-0000-1000-8000-0026BB765291"
	CharacteristicTypeChargingState                             = "0000008F-0000-1000-8000-0026BB765291"
	CharacteristicTypeCarbonMonoxideLevel                       = "00000090-0000-1000-8000-0026BB765291"
	CharacteristicTypeCarbonMonoxidePeakLevel                   = "00000091-0000-1000-8000-0026BB765291"
	CharacteristicTypeCarbonDioxideDetected                     = "00000092-0000-1000-8000-0026BB765291"
	CharacteristicTypeCarbonDioxideLevel                        = "00000093-0000-1000-8000-0026BB765291"
	CharacteristicTypeCarbonDioxidePeakLevel                    = "00000094-0000-1000-8000-0026BB765291"
	CharacteristicTypeAirQuality                                = "00000095-0000-1000-8000-0026BB765291"
	CharacteristicTypeAccessoryFlags                            = "000000A6-0000-1000-8000-0026BB765291"
	CharacteristicTypeLockPhysicalControls                      = "000000A7-0000-1000-8000-0026BB765291"
	CharacteristicTypeTargetAirPurifierState                    = "000000A8-0000-1000-8000-0026BB765291"
	CharacteristicTypeCurrentAirPurifierState                   = "000000A9-0000-1000-8000-0026BB765291"
	CharacteristicTypeCurrentSlatState                          = "000000AA-0000-1000-8000-0026BB765291"
	CharacteristicTypeFilterLifeLevel                           = "000000AB-0000-1000-8000-0026BB765291"
	CharacteristicTypeFilterChangeIndication                    = "000000AC-0000-1000-8000-0026BB765291"
	CharacteristicTypeFilterResetChangeIndication               = "000000AD-0000-1000-8000-0026BB765291"
	CharacteristicTypeCurrentFanState                           = "000000AF-0000-1000-8000-0026BB765291"
	CharacteristicTypeActive                                    = "000000B0-0000-1000-8000-0026BB765291"
	CharacteristicTypeCurrentHeaterCoolerState                  = "000000B1-0000-1000-8000-0026BB765291"
	CharacteristicTypeTargetHeaterCoolerState                   = "000000B2-0000-1000-8000-0026BB765291"
	CharacteristicTypeCurrentHumidifierDehumidifierState        = "000000B3-0000-1000-8000-0026BB765291"
	CharacteristicTypeTargetHumidifierDehumidifierState         = "000000B4-0000-1000-8000-0026BB765291"
	CharacteristicTypeWaterLevel                                = "000000B5-0000-1000-8000-0026BB765291"
	CharacteristicTypeSwingMode                                 = "000000B6-0000-1000-8000-0026BB765291"
	CharacteristicTypeTargetFanState                            = "000000BF-0000-1000-8000-0026BB765291"
	CharacteristicTypeSlatType                                  = "000000C0-0000-1000-8000-0026BB765291"
	CharacteristicTypeCurrentTilt                               = "000000C1-0000-1000-8000-0026BB765291"
	CharacteristicTypeTargetTilt                                = "000000C2-0000-1000-8000-0026BB765291"
	CharacteristicTypeOzoneDensity                              = "000000C3-0000-1000-8000-0026BB765291"
	CharacteristicTypeNitrogenDioxideDensity                    = "000000C4-0000-1000-8000-0026BB765291"
	CharacteristicTypeSulphurDioxideDensity                     = "000000C5-0000-1000-8000-0026BB765291"
	CharacteristicTypePM25Density                               = "000000C6-0000-1000-8000-0026BB765291"
	CharacteristicTypePM10Density                               = "000000C7-0000-1000-8000-0026BB765291"
	CharacteristicTypeVolatileOrganicCompoundDensity            = "000000C8-0000-1000-8000-0026BB765291"
	CharacteristicTypeDehumidifierThreshold                     = "000000C9-0000-1000-8000-0026BB765291"
	CharacteristicTypeHumidifierThreshold                       = "000000CA-0000-1000-8000-0026BB765291"
	CharacteristicTypeLabelIndex                                = "000000CB-0000-1000-8000-0026BB765291"
	CharacteristicTypeLabelNamespace                            = "000000CD-0000-1000-8000-0026BB765291"
	CharacteristicTypeColorTemperature                          = "000000CE-0000-1000-8000-0026BB765291"
	CharacteristicTypeProgramMode                               = "000000D1-0000-1000-8000-0026BB765291"
	CharacteristicTypeInUse                                     = "000000D2-0000-1000-8000-0026BB765291"
	CharacteristicTypeSetDuration                               = "000000D3-0000-1000-8000-0026BB765291"
	CharacteristicTypeRemainingDuration                         = "000000D4-0000-1000-8000-0026BB765291"
	CharacteristicTypeValveType                                 = "000000D5-0000-1000-8000-0026BB765291"
	CharacteristicTypeIsConfigured                              = "000000D6-0000-1000-8000-0026BB765291"
	CharacteristicTypeInputSourceType                           = "000000DB-0000-1000-8000-0026BB765291"
	CharacteristicTypeInputDeviceType                           = "000000DC-0000-1000-8000-0026BB765291"
	CharacteristicTypeClosedCaptions                            = "000000DD-0000-1000-8000-0026BB765291"
	CharacteristicTypePowerModeSelection                        = "000000DF-0000-1000-8000-0026BB765291"
	CharacteristicTypeCurrentMediaState                         = "000000E0-0000-1000-8000-0026BB765291"
	CharacteristicTypeRemoteKey                                 = "000000E1-0000-1000-8000-0026BB765291"
	CharacteristicTypePictureMode                               = "000000E2-0000-1000-8000-0026BB765291"
	CharacteristicTypeConfiguredName                            = "000000E3-0000-1000-8000-0026BB765291"
	CharacteristicTypeIdentifier                                = "000000E6-0000-1000-8000-0026BB765291"
	CharacteristicTypeActiveIdentifier                          = "000000E7-0000-1000-8000-0026BB765291"
	CharacteristicTypeSleepDiscoveryMode                        = "000000E8-0000-1000-8000-0026BB765291"
	CharacteristicTypeVolumeControlType                         = "000000E9-0000-1000-8000-0026BB765291"
	CharacteristicTypeVolumeSelector                            = "000000EA-0000-1000-8000-0026BB765291"
	CharacteristicTypeSupportedVideoStreamConfiguration         = "00000114-0000-1000-8000-0026BB765291"
	CharacteristicTypeSupportedAudioStreamConfiguration         = "00000115-0000-1000-8000-0026BB765291"
	CharacteristicTypeSupportedRTPConfiguration                 = "00000116-0000-1000-8000-0026BB765291"
	CharacteristicTypeSelectedStreamConfiguration               = "00000117-0000-1000-8000-0026BB765291"
	CharacteristicTypeSetupStreamEndpoint                       = "00000118-0000-1000-8000-0026BB765291"
	CharacteristicTypeVolume                                    = "00000119-0000-1000-8000-0026BB765291"
	CharacteristicTypeMute                                      = "0000011A-0000-1000-8000-0026BB765291"
	CharacteristicTypeNightVision                               = "0000011B-0000-1000-8000-0026BB765291"
	CharacteristicTypeOpticalZoom                               = "0000011C-0000-1000-8000-0026BB765291"
	CharacteristicTypeDigitalZoom                               = "0000011D-0000-1000-8000-0026BB765291"
	CharacteristicTypeImageRotation                             = "0000011E-0000-1000-8000-0026BB765291"
	CharacteristicTypeImageMirroring                            = "0000011F-0000-1000-8000-0026BB765291"
	CharacteristicTypeStreamingStatus                           = "00000120-0000-1000-8000-0026BB765291"
	CharacteristicTypeSupportedTargetConfiguration              = "00000123-0000-1000-8000-0026BB765291"
	CharacteristicTypeTargetList                                = "00000124-0000-1000-8000-0026BB765291"
	CharacteristicTypeButtonEvent                               = "00000126-0000-1000-8000-0026BB765291"
	CharacteristicTypeSelectedAudioStreamConfiguration          = "00000128-0000-1000-8000-0026BB765291"
	CharacteristicTypeSupportedDataStreamTransportConfiguration = "00000130-0000-1000-8000-0026BB765291"
	CharacteristicTypeSetupDataStreamTransport                  = "00000131-0000-1000-8000-0026BB765291"
	CharacteristicTypeSiriInputType                             = "00000132-0000-1000-8000-0026BB765291"
	CharacteristicTypeTargetVisibilityState                     = "00000134-0000-1000-8000-0026BB765291"
	CharacteristicTypeCurrentVisibilityState                    = "00000135-0000-1000-8000-0026BB765291"
	CharacteristicTypeTargetMediaState                          = "00000137-0000-1000-8000-0026BB765291"
	CharacteristicTypeWiFiSatelliteStatus                       = "0000021E-0000-1000-8000-0026BB765291"
	CharacteristicTypeProductData                               = "00000220-0000-1000-8000-0026BB765291"
)

// Accessory category identifiers.
const (
	AccessoryCategoryOther                    = "HMAccessoryCategoryTypeOther"
	AccessoryCategorySecuritySystem           = "HMAccessoryCategoryTypeSecuritySystem"
	AccessoryCategoryBridge                   = "HMAccessoryCategoryTypeBridge"
	AccessoryCategoryDoor                     = "HMAccessoryCategoryTypeDoor"
	AccessoryCategoryDoorLock                 = "HMAccessoryCategoryTypeDoorLock"
	AccessoryCategoryFan                      = "HMAccessoryCategoryTypeFan"
	AccessoryCategoryGarageDoorOpener         = "HMAccessoryCategoryTypeGarageDoorOpener"
	AccessoryCategoryIPCamera                 = "HMAccessoryCategoryTypeIPCamera"
	AccessoryCategoryOutlet                   = "HMAccessoryCategoryTypeOutlet"
	AccessoryCategoryProgrammableSwitch       = "HMAccessoryCategoryTypeProgrammableSwitch"
	AccessoryCategoryRangeExtender            = "HMAccessoryCategoryTypeRangeExtender"
	AccessoryCategorySensor                   = "HMAccessoryCategoryTypeSensor"
	AccessoryCategorySwitch                   = "HMAccessoryCategoryTypeSwitch"
	AccessoryCategoryThermostat               = "HMAccessoryCategoryTypeThermostat"
	AccessoryCategoryVideoDoorbell            = "HMAccessoryCategoryTypeVideoDoorbell"
	AccessoryCategoryWindow                   = "HMAccessoryCategoryTypeWindow"
	AccessoryCategoryWindowCovering           = "HMAccessoryCategoryTypeWindowCovering"
	AccessoryCategoryAirPurifier              = "HMAccessoryCategoryTypeAirPurifier"
	AccessoryCategoryAirHeater                = "HMAccessoryCategoryTypeAirHeater"
	AccessoryCategoryAirConditioner           = "HMAccessoryCategoryTypeAirConditioner"
	AccessoryCategoryAirHumidifier            = "HMAccessoryCategoryTypeAirHumidifier"
	AccessoryCategoryAirDehumidifier          = "HMAccessoryCategoryTypeAirDehumidifier"
	AccessoryCategorySprinkler                = "HMAccessoryCategoryTypeSprinkler"
	AccessoryCategoryFaucet                   = "HMAccessoryCategoryTypeFaucet"
	AccessoryCategoryShowerHead               = "HMAccessoryCategoryTypeShowerHead"
	AccessoryCategoryTelevision               = "HMAccessoryCategoryTypeTelevision"
	AccessoryCategoryTelevisionSetTopBox      = "HMAccessoryCategoryTypeTelevisionSetTopBox"
	AccessoryCategoryTelevisionStreamingStick = "HMAccessoryCategoryTypeTelevisionStreamingStick"
	AccessoryCategoryWiFiRouter               = "HMAccessoryCategoryTypeWiFiRouter"
	AccessoryCategoryLightbulb                = "HMAccessoryCategoryTypeLightbulb"
)

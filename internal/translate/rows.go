package translate

import (
	"github.com/nerrad567/gray-logic-homegraph/internal/homegraph"
	"github.com/nerrad567/gray-logic-homegraph/internal/wire"
)

type serviceTypeRow struct {
	code   wire.ServiceType
	native string
}

type characteristicTypeRow struct {
	code          wire.CharacteristicType
	native        string
	defaultFormat wire.Format
}

type categoryRow struct {
	code   wire.Category
	native string
}

var serviceTypeRows = []serviceTypeRow{
	{wire.ServiceTypeAccessoryInformation, homegraph.ServiceTypeAccessoryInformation},
	{wire.ServiceTypeFan, homegraph.ServiceTypeFan},
	{wire.ServiceTypeGarageDoorOpener, homegraph.ServiceTypeGarageDoorOpener},
	{wire.ServiceTypeLightBulb, homegraph.ServiceTypeLightBulb},
	{wire.ServiceTypeLockManagement, homegraph.ServiceTypeLockManagement},
	{wire.ServiceTypeLockMechanism, homegraph.ServiceTypeLockMechanism},
	{wire.ServiceTypeOutlet, homegraph.ServiceTypeOutlet},
	{wire.ServiceTypeSwitch, homegraph.ServiceTypeSwitch},
	{wire.ServiceTypeThermostat, homegraph.ServiceTypeThermostat},
	{wire.ServiceTypeSecuritySystem, homegraph.ServiceTypeSecuritySystem},
	{wire.ServiceTypeCarbonMonoxideSensor, homegraph.ServiceTypeCarbonMonoxideSensor},
	{wire.ServiceTypeContactSensor, homegraph.ServiceTypeContactSensor},
	{wire.ServiceTypeDoor, homegraph.ServiceTypeDoor},
	{wire.ServiceTypeHumiditySensor, homegraph.ServiceTypeHumiditySensor},
	{wire.ServiceTypeLeakSensor, homegraph.ServiceTypeLeakSensor},
	{wire.ServiceTypeLightSensor, homegraph.ServiceTypeLightSensor},
	{wire.ServiceTypeMotionSensor, homegraph.ServiceTypeMotionSensor},
	{wire.ServiceTypeOccupancySensor, homegraph.ServiceTypeOccupancySensor},
	{wire.ServiceTypeSmokeSensor, homegraph.ServiceTypeSmokeSensor},
	{wire.ServiceTypeStatefulProgrammableSwitch, homegraph.ServiceTypeStatefulProgrammableSwitch},
	{wire.ServiceTypeStatelessProgrammableSwitch, homegraph.ServiceTypeStatelessProgrammableSwitch},
	{wire.ServiceTypeTemperatureSensor, homegraph.ServiceTypeTemperatureSensor},
	{wire.ServiceTypeWindow, homegraph.ServiceTypeWindow},
	{wire.ServiceTypeWindowCovering, homegraph.ServiceTypeWindowCovering},
	{wire.ServiceTypeAirQualitySensor, homegraph.ServiceTypeAirQualitySensor},
	{wire.ServiceTypeBattery, homegraph.ServiceTypeBattery},
	{wire.ServiceTypeCarbonDioxideSensor, homegraph.ServiceTypeCarbonDioxideSensor},
	{wire.ServiceTypeCameraRTPStreamManagement, homegraph.ServiceTypeCameraRTPStreamManagement},
	{wire.ServiceTypeCameraControl, homegraph.ServiceTypeCameraControl},
	{wire.ServiceTypeMicrophone, homegraph.ServiceTypeMicrophone},
	{wire.ServiceTypeSpeaker, homegraph.ServiceTypeSpeaker},
	{wire.ServiceTypeDoorbell, homegraph.ServiceTypeDoorbell},
	{wire.ServiceTypeVentilationFan, homegraph.ServiceTypeVentilationFan},
	{wire.ServiceTypeSlats, homegraph.ServiceTypeSlats},
	{wire.ServiceTypeFilterMaintenance, homegraph.ServiceTypeFilterMaintenance},
	{wire.ServiceTypeAirPurifier, homegraph.ServiceTypeAirPurifier},
	{wire.ServiceTypeHeaterCooler, homegraph.ServiceTypeHeaterCooler},
	{wire.ServiceTypeHumidifierDehumidifier, homegraph.ServiceTypeHumidifierDehumidifier},
	{wire.ServiceTypeLabel, homegraph.ServiceTypeLabel},
	{wire.ServiceTypeIrrigationSystem, homegraph.ServiceTypeIrrigationSystem},
	{wire.ServiceTypeValve, homegraph.ServiceTypeValve},
	{wire.ServiceTypeFaucet, homegraph.ServiceTypeFaucet},
	{wire.ServiceTypeTelevision, homegraph.ServiceTypeTelevision},
	{wire.ServiceTypeInputSource, homegraph.ServiceTypeInputSource},
}

var characteristicTypeRows = []characteristicTypeRow{
	{wire.CharacteristicTypeAdminOnlyAccess, homegraph.CharacteristicTypeAdminOnlyAccess, wire.FormatBool},
	{wire.CharacteristicTypeAudioFeedback, homegraph.CharacteristicTypeAudioFeedback, wire.FormatBool},
	{wire.CharacteristicTypeBrightness, homegraph.CharacteristicTypeBrightness, wire.FormatInt},
	{wire.CharacteristicTypeCoolingThreshold, homegraph.CharacteristicTypeCoolingThreshold, wire.FormatFloat},
	{wire.CharacteristicTypeCurrentDoorState, homegraph.CharacteristicTypeCurrentDoorState, wire.FormatUInt8},
	{wire.CharacteristicTypeCurrentHeatingCooling, homegraph.CharacteristicTypeCurrentHeatingCooling, wire.FormatUInt8},
	{wire.CharacteristicTypeCurrentRelativeHumidity, homegraph.CharacteristicTypeCurrentRelativeHumidity, wire.FormatFloat},
	{wire.CharacteristicTypeCurrentTemperature, homegraph.CharacteristicTypeCurrentTemperature, wire.FormatFloat},
	{wire.CharacteristicTypeHeatingThreshold, homegraph.CharacteristicTypeHeatingThreshold, wire.FormatFloat},
	{wire.CharacteristicTypeHue, homegraph.CharacteristicTypeHue, wire.FormatFloat},
	{wire.CharacteristicTypeIdentify, homegraph.CharacteristicTypeIdentify, wire.FormatBool},
	{wire.CharacteristicTypeLockManagementControlPoint, homegraph.CharacteristicTypeLockManagementControlPoint, wire.FormatTLV8},
	{wire.CharacteristicTypeLockManagementAutoSecureTimeout, homegraph.CharacteristicTypeLockManagementAutoSecureTimeout, wire.FormatUInt32},
	{wire.CharacteristicTypeLockLastKnownAction, homegraph.CharacteristicTypeLockLastKnownAction, wire.FormatUInt8},
	{wire.CharacteristicTypeCurrentLockMechanismState, homegraph.CharacteristicTypeCurrentLockMechanismState, wire.FormatUInt8},
	{wire.CharacteristicTypeTargetLockMechanismState, homegraph.CharacteristicTypeTargetLockMechanismState, wire.FormatUInt8},
	{wire.CharacteristicTypeLogs, homegraph.CharacteristicTypeLogs, wire.FormatTLV8},
	{wire.CharacteristicTypeManufacturer, homegraph.CharacteristicTypeManufacturer, wire.FormatString},
	{wire.CharacteristicTypeModel, homegraph.CharacteristicTypeModel, wire.FormatString},
	{wire.CharacteristicTypeMotionDetected, homegraph.CharacteristicTypeMotionDetected, wire.FormatBool},
	{wire.CharacteristicTypeName, homegraph.CharacteristicTypeName, wire.FormatString},
	{wire.CharacteristicTypeObstructionDetected, homegraph.CharacteristicTypeObstructionDetected, wire.FormatBool},
	{wire.CharacteristicTypePowerState, homegraph.CharacteristicTypePowerState, wire.FormatBool},
	{wire.CharacteristicTypeOutletInUse, homegraph.CharacteristicTypeOutletInUse, wire.FormatBool},
	{wire.CharacteristicTypeRotationDirection, homegraph.CharacteristicTypeRotationDirection, wire.FormatInt},
	{wire.CharacteristicTypeRotationSpeed, homegraph.CharacteristicTypeRotationSpeed, wire.FormatFloat},
	{wire.CharacteristicTypeSaturation, homegraph.CharacteristicTypeSaturation, wire.FormatFloat},
	{wire.CharacteristicTypeSerialNumber, homegraph.CharacteristicTypeSerialNumber, wire.FormatString},
	{wire.CharacteristicTypeTargetDoorState, homegraph.CharacteristicTypeTargetDoorState, wire.FormatUInt8},
	{wire.CharacteristicTypeTargetHeatingCooling, homegraph.CharacteristicTypeTargetHeatingCooling, wire.FormatUInt8},
	{wire.CharacteristicTypeTargetRelativeHumidity, homegraph.CharacteristicTypeTargetRelativeHumidity, wire.FormatFloat},
	{wire.CharacteristicTypeTargetTemperature, homegraph.CharacteristicTypeTargetTemperature, wire.FormatFloat},
	{wire.CharacteristicTypeTemperatureUnits, homegraph.CharacteristicTypeTemperatureUnits, wire.FormatUInt8},
	{wire.CharacteristicTypeVersion, homegraph.CharacteristicTypeVersion, wire.FormatString},
	{wire.CharacteristicTypeFirmwareVersion, homegraph.CharacteristicTypeFirmwareVersion, wire.FormatString},
	{wire.CharacteristicTypeHardwareVersion, homegraph.CharacteristicTypeHardwareVersion, wire.FormatString},
	{wire.CharacteristicTypeSoftwareVersion, homegraph.CharacteristicTypeSoftwareVersion, wire.FormatString},
	{wire.CharacteristicTypeAirParticulateDensity, homegraph.CharacteristicTypeAirParticulateDensity, wire.FormatFloat},
	{wire.CharacteristicTypeAirParticulateSize, homegraph.CharacteristicTypeAirParticulateSize, wire.FormatUInt8},
	{wire.CharacteristicTypeCurrentSecuritySystemState, homegraph.CharacteristicTypeCurrentSecuritySystemState, wire.FormatUInt8},
	{wire.CharacteristicTypeTargetSecuritySystemState, homegraph.CharacteristicTypeTargetSecuritySystemState, wire.FormatUInt8},
	{wire.CharacteristicTypeBatteryLevel, homegraph.CharacteristicTypeBatteryLevel, wire.FormatUInt8},
	{wire.CharacteristicTypeCarbonMonoxideDetected, homegraph.CharacteristicTypeCarbonMonoxideDetected, wire.FormatUInt8},
	{wire.CharacteristicTypeContactState, homegraph.CharacteristicTypeContactState, wire.FormatUInt8},
	{wire.CharacteristicTypeCurrentLightLevel, homegraph.CharacteristicTypeCurrentLightLevel, wire.FormatFloat},
	{wire.CharacteristicTypeCurrentHorizontalTilt, homegraph.CharacteristicTypeCurrentHorizontalTilt, wire.FormatInt},
	{wire.CharacteristicTypeCurrentPosition, homegraph.CharacteristicTypeCurrentPosition, wire.FormatUInt8},
	{wire.CharacteristicTypeCurrentVerticalTilt, homegraph.CharacteristicTypeCurrentVerticalTilt, wire.FormatInt},
	{wire.CharacteristicTypeHoldPosition, homegraph.CharacteristicTypeHoldPosition, wire.FormatBool},
	{wire.CharacteristicTypeLeakDetected, homegraph.CharacteristicTypeLeakDetected, wire.FormatUInt8},
	{wire.CharacteristicTypeOccupancyDetected, homegraph.CharacteristicTypeOccupancyDetected, wire.FormatUInt8},
	{wire.CharacteristicTypePositionState, homegraph.CharacteristicTypePositionState, wire.FormatUInt8},
	{wire.CharacteristicTypeInputEvent, homegraph.CharacteristicTypeInputEvent, wire.FormatUInt8},
	{wire.CharacteristicTypeStatusActive, homegraph.CharacteristicTypeStatusActive, wire.FormatBool},
	{wire.CharacteristicTypeSmokeDetected, homegraph.CharacteristicTypeSmokeDetected, wire.FormatUInt8},
	{wire.CharacteristicTypeStatusFault, homegraph.CharacteristicTypeStatusFault, wire.FormatUInt8},
	{wire.CharacteristicTypeStatusJammed, homegraph.CharacteristicTypeStatusJammed, wire.FormatUInt8},
	{wire.CharacteristicTypeStatusLowBattery, homegraph.CharacteristicTypeStatusLowBattery, wire.FormatUInt8},
	{wire.CharacteristicTypeStatusTampered, homegraph.CharacteristicTypeStatusTampered, wire.FormatUInt8},
	{wire.CharacteristicTypeTargetHorizontalTilt, homegraph.CharacteristicTypeTargetHorizontalTilt, wire.FormatInt},
	{wire.CharacteristicTypeTargetPosition, homegraph.CharacteristicTypeTargetPosition, wire.FormatUInt8},
	{wire.CharacteristicTypeTargetVerticalTilt, homegraph.CharacteristicTypeTargetVerticalTilt, wire.FormatInt},
	{wire.CharacteristicTypeSecuritySystemAlarmType, homegraph.CharacteristicTypeSecuritySystemAlarmType, wire.FormatUInt8},
	{wire.CharacteristicTypeChargingState, homegraph.CharacteristicTypeChargingState, wire.FormatUInt8},
	{wire.CharacteristicTypeCarbonMonoxideLevel, homegraph.CharacteristicTypeCarbonMonoxideLevel, wire.FormatFloat},
	{wire.CharacteristicTypeCarbonMonoxidePeakLevel, homegraph.CharacteristicTypeCarbonMonoxidePeakLevel, wire.FormatFloat},
	{wire.CharacteristicTypeCarbonDioxideDetected, homegraph.CharacteristicTypeCarbonDioxideDetected, wire.FormatUInt8},
	{wire.CharacteristicTypeCarbonDioxideLevel, homegraph.CharacteristicTypeCarbonDioxideLevel, wire.FormatFloat},
	{wire.CharacteristicTypeCarbonDioxidePeakLevel, homegraph.CharacteristicTypeCarbonDioxidePeakLevel, wire.FormatFloat},
	{wire.CharacteristicTypeAirQuality, homegraph.CharacteristicTypeAirQuality, wire.FormatUInt8},
	{wire.CharacteristicTypeAccessoryFlags, homegraph.CharacteristicTypeAccessoryFlags, wire.FormatUInt32},
	{wire.CharacteristicTypeLockPhysicalControls, homegraph.CharacteristicTypeLockPhysicalControls, wire.FormatUInt8},
	{wire.CharacteristicTypeTargetAirPurifierState, homegraph.CharacteristicTypeTargetAirPurifierState, wire.FormatUInt8},
	{wire.CharacteristicTypeCurrentAirPurifierState, homegraph.CharacteristicTypeCurrentAirPurifierState, wire.FormatUInt8},
	{wire.CharacteristicTypeCurrentSlatState, homegraph.CharacteristicTypeCurrentSlatState, wire.FormatUInt8},
	{wire.CharacteristicTypeFilterLifeLevel, homegraph.CharacteristicTypeFilterLifeLevel, wire.FormatFloat},
	{wire.CharacteristicTypeFilterChangeIndication, homegraph.CharacteristicTypeFilterChangeIndication, wire.FormatUInt8},
	{wire.CharacteristicTypeFilterResetChangeIndication, homegraph.CharacteristicTypeFilterResetChangeIndication, wire.FormatUInt8},
	{wire.CharacteristicTypeCurrentFanState, homegraph.CharacteristicTypeCurrentFanState, wire.FormatUInt8},
	{wire.CharacteristicTypeActive, homegraph.CharacteristicTypeActive, wire.FormatUInt8},
	{wire.CharacteristicTypeCurrentHeaterCoolerState, homegraph.CharacteristicTypeCurrentHeaterCoolerState, wire.FormatUInt8},
	{wire.CharacteristicTypeTargetHeaterCoolerState, homegraph.CharacteristicTypeTargetHeaterCoolerState, wire.FormatUInt8},
	{wire.CharacteristicTypeCurrentHumidifierDehumidifierState, homegraph.CharacteristicTypeCurrentHumidifierDehumidifierState, wire.FormatUInt8},
	{wire.CharacteristicTypeTargetHumidifierDehumidifierState, homegraph.CharacteristicTypeTargetHumidifierDehumidifierState, wire.FormatUInt8},
	{wire.CharacteristicTypeWaterLevel, homegraph.CharacteristicTypeWaterLevel, wire.FormatFloat},
	{wire.CharacteristicTypeSwingMode, homegraph.CharacteristicTypeSwingMode, wire.FormatUInt8},
	{wire.CharacteristicTypeTargetFanState, homegraph.CharacteristicTypeTargetFanState, wire.FormatUInt8},
	{wire.CharacteristicTypeSlatType, homegraph.CharacteristicTypeSlatType, wire.FormatUInt8},
	{wire.CharacteristicTypeCurrentTilt, homegraph.CharacteristicTypeCurrentTilt, wire.FormatInt},
	{wire.CharacteristicTypeTargetTilt, homegraph.CharacteristicTypeTargetTilt, wire.FormatInt},
	{wire.CharacteristicTypeOzoneDensity, homegraph.CharacteristicTypeOzoneDensity, wire.FormatFloat},
	{wire.CharacteristicTypeNitrogenDioxideDensity, homegraph.CharacteristicTypeNitrogenDioxideDensity, wire.FormatFloat},
	{wire.CharacteristicTypeSulphurDioxideDensity, homegraph.CharacteristicTypeSulphurDioxideDensity, wire.FormatFloat},
	{wire.CharacteristicTypePM25Density, homegraph.CharacteristicTypePM25Density, wire.FormatFloat},
	{wire.CharacteristicTypePM10Density, homegraph.CharacteristicTypePM10Density, wire.FormatFloat},
	{wire.CharacteristicTypeVolatileOrganicCompoundDensity, homegraph.CharacteristicTypeVolatileOrganicCompoundDensity, wire.FormatFloat},
	{wire.CharacteristicTypeDehumidifierThreshold, homegraph.CharacteristicTypeDehumidifierThreshold, wire.FormatFloat},
	{wire.CharacteristicTypeHumidifierThreshold, homegraph.CharacteristicTypeHumidifierThreshold, wire.FormatFloat},
	{wire.CharacteristicTypeLabelIndex, homegraph.CharacteristicTypeLabelIndex, wire.FormatUInt8},
	{wire.CharacteristicTypeLabelNamespace, homegraph.CharacteristicTypeLabelNamespace, wire.FormatUInt8},
	{wire.CharacteristicTypeColorTemperature, homegraph.CharacteristicTypeColorTemperature, wire.FormatUInt32},
	{wire.CharacteristicTypeProgramMode, homegraph.CharacteristicTypeProgramMode, wire.FormatUInt8},
	{wire.CharacteristicTypeInUse, homegraph.CharacteristicTypeInUse, wire.FormatUInt8},
	{wire.CharacteristicTypeSetDuration, homegraph.CharacteristicTypeSetDuration, wire.FormatUInt32},
	{wire.CharacteristicTypeRemainingDuration, homegraph.CharacteristicTypeRemainingDuration, wire.FormatUInt32},
	{wire.CharacteristicTypeValveType, homegraph.CharacteristicTypeValveType, wire.FormatUInt8},
	{wire.CharacteristicTypeIsConfigured, homegraph.CharacteristicTypeIsConfigured, wire.FormatUInt8},
	{wire.CharacteristicTypeInputSourceType, homegraph.CharacteristicTypeInputSourceType, wire.FormatUInt8},
	{wire.CharacteristicTypeInputDeviceType, homegraph.CharacteristicTypeInputDeviceType, wire.FormatUInt8},
	{wire.CharacteristicTypeClosedCaptions, homegraph.CharacteristicTypeClosedCaptions, wire.FormatUInt8},
	{wire.CharacteristicTypePowerModeSelection, homegraph.CharacteristicTypePowerModeSelection, wire.FormatUInt8},
	{wire.CharacteristicTypeCurrentMediaState, homegraph.CharacteristicTypeCurrentMediaState, wire.FormatUInt8},
	{wire.CharacteristicTypeRemoteKey, homegraph.CharacteristicTypeRemoteKey, wire.FormatUInt8},
	{wire.CharacteristicTypePictureMode, homegraph.CharacteristicTypePictureMode, wire.FormatUInt16},
	{wire.CharacteristicTypeConfiguredName, homegraph.CharacteristicTypeConfiguredName, wire.FormatString},
	{wire.CharacteristicTypeIdentifier, homegraph.CharacteristicTypeIdentifier, wire.FormatUInt32},
	{wire.CharacteristicTypeActiveIdentifier, homegraph.CharacteristicTypeActiveIdentifier, wire.FormatUInt32},
	{wire.CharacteristicTypeSleepDiscoveryMode, homegraph.CharacteristicTypeSleepDiscoveryMode, wire.FormatUInt8},
	{wire.CharacteristicTypeVolumeControlType, homegraph.CharacteristicTypeVolumeControlType, wire.FormatUInt8},
	{wire.CharacteristicTypeVolumeSelector, homegraph.CharacteristicTypeVolumeSelector, wire.FormatUInt8},
	{wire.CharacteristicTypeSupportedVideoStreamConfiguration, homegraph.CharacteristicTypeSupportedVideoStreamConfiguration, wire.FormatTLV8},
	{wire.CharacteristicTypeSupportedAudioStreamConfiguration, homegraph.CharacteristicTypeSupportedAudioStreamConfiguration, wire.FormatTLV8},
	{wire.CharacteristicTypeSupportedRTPConfiguration, homegraph.CharacteristicTypeSupportedRTPConfiguration, wire.FormatTLV8},
	{wire.CharacteristicTypeSelectedStreamConfiguration, homegraph.CharacteristicTypeSelectedStreamConfiguration, wire.FormatTLV8},
	{wire.CharacteristicTypeSetupStreamEndpoint, homegraph.CharacteristicTypeSetupStreamEndpoint, wire.FormatTLV8},
	{wire.CharacteristicTypeVolume, homegraph.CharacteristicTypeVolume, wire.FormatUInt8},
	{wire.CharacteristicTypeMute, homegraph.CharacteristicTypeMute, wire.FormatBool},
	{wire.CharacteristicTypeNightVision, homegraph.CharacteristicTypeNightVision, wire.FormatBool},
	{wire.CharacteristicTypeOpticalZoom, homegraph.CharacteristicTypeOpticalZoom, wire.FormatFloat},
	{wire.CharacteristicTypeDigitalZoom, homegraph.CharacteristicTypeDigitalZoom, wire.FormatFloat},
	{wire.CharacteristicTypeImageRotation, homegraph.CharacteristicTypeImageRotation, wire.FormatFloat},
	{wire.CharacteristicTypeImageMirroring, homegraph.CharacteristicTypeImageMirroring, wire.FormatBool},
	{wire.CharacteristicTypeStreamingStatus, homegraph.CharacteristicTypeStreamingStatus, wire.FormatTLV8},
	{wire.CharacteristicTypeSupportedTargetConfiguration, homegraph.CharacteristicTypeSupportedTargetConfiguration, wire.FormatTLV8},
	{wire.CharacteristicTypeTargetList, homegraph.CharacteristicTypeTargetList, wire.FormatTLV8},
	{wire.CharacteristicTypeButtonEvent, homegraph.CharacteristicTypeButtonEvent, wire.FormatTLV8},
	{wire.CharacteristicTypeSelectedAudioStreamConfiguration, homegraph.CharacteristicTypeSelectedAudioStreamConfiguration, wire.FormatTLV8},
	{wire.CharacteristicTypeSupportedDataStreamTransportConfiguration, homegraph.CharacteristicTypeSupportedDataStreamTransportConfiguration, wire.FormatTLV8},
	{wire.CharacteristicTypeSetupDataStreamTransport, homegraph.CharacteristicTypeSetupDataStreamTransport, wire.FormatTLV8},
	{wire.CharacteristicTypeSiriInputType, homegraph.CharacteristicTypeSiriInputType, wire.FormatUInt8},
	{wire.CharacteristicTypeTargetVisibilityState, homegraph.CharacteristicTypeTargetVisibilityState, wire.FormatUInt8},
	{wire.CharacteristicTypeCurrentVisibilityState, homegraph.CharacteristicTypeCurrentVisibilityState, wire.FormatUInt8},
	{wire.CharacteristicTypeTargetMediaState, homegraph.CharacteristicTypeTargetMediaState, wire.FormatUInt8},
	{wire.CharacteristicTypeWiFiSatelliteStatus, homegraph.CharacteristicTypeWiFiSatelliteStatus, wire.FormatUInt8},
	{wire.CharacteristicTypeProductData, homegraph.CharacteristicTypeProductData, wire.FormatData},
}

var categoryRows = []categoryRow{
	{wire.CategoryOther, homegraph.AccessoryCategoryOther},
	{wire.CategorySecuritySystem, homegraph.AccessoryCategorySecuritySystem},
	{wire.CategoryBridge, homegraph.AccessoryCategoryBridge},
	{wire.CategoryDoor, homegraph.AccessoryCategoryDoor},
	{wire.CategoryDoorLock, homegraph.AccessoryCategoryDoorLock},
	{wire.CategoryFan, homegraph.AccessoryCategoryFan},
	{wire.CategoryGarageDoorOpener, homegraph.AccessoryCategoryGarageDoorOpener},
	{wire.CategoryIPCamera, homegraph.AccessoryCategoryIPCamera},
	{wire.CategoryOutlet, homegraph.AccessoryCategoryOutlet},
	{wire.CategoryProgrammableSwitch, homegraph.AccessoryCategoryProgrammableSwitch},
	{wire.CategoryRangeExtender, homegraph.AccessoryCategoryRangeExtender},
	{wire.CategorySensor, homegraph.AccessoryCategorySensor},
	{wire.CategorySwitch, homegraph.AccessoryCategorySwitch},
	{wire.CategoryThermostat, homegraph.AccessoryCategoryThermostat},
	{wire.CategoryVideoDoorbell, homegraph.AccessoryCategoryVideoDoorbell},
	{wire.CategoryWindow, homegraph.AccessoryCategoryWindow},
	{wire.CategoryWindowCovering, homegraph.AccessoryCategoryWindowCovering},
	{wire.CategoryAirPurifier, homegraph.AccessoryCategoryAirPurifier},
	{wire.CategoryAirHeater, homegraph.AccessoryCategoryAirHeater},
	{wire.CategoryAirConditioner, homegraph.AccessoryCategoryAirConditioner},
	{wire.CategoryAirHumidifier, homegraph.AccessoryCategoryAirHumidifier},
	{wire.CategoryAirDehumidifier, homegraph.AccessoryCategoryAirDehumidifier},
	{wire.CategorySprinkler, homegraph.AccessoryCategorySprinkler},
	{wire.CategoryFaucet, homegraph.AccessoryCategoryFaucet},
	{wire.CategoryShowerHead, homegraph.AccessoryCategoryShowerHead},
	{wire.CategoryTelevision, homegraph.AccessoryCategoryTelevision},
	{wire.CategoryTelevisionSetTopBox, homegraph.AccessoryCategoryTelevisionSetTopBox},
	{wire.CategoryTelevisionStreamingStick, homegraph.AccessoryCategoryTelevisionStreamingStick},
	{wire.CategoryWiFiRouter, homegraph.AccessoryCategoryWiFiRouter},
	{wire.CategoryLightbulb, homegraph.AccessoryCategoryLightbulb},
}
